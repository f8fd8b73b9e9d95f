package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/deeplink/pkg/errors"
)

// Registry maps names to items of one kind, such as the handler for each
// deep link action. The kind appears in every error so a failed lookup
// reads as "no action handler registered for 'x'".
type Registry[T any] interface {
	// Register adds an item; names are unique and the first one wins
	Register(name string, item T) error
	Get(name string) (T, error)
	// List returns all registered names in sorted order
	List() []string
	Kind() string
}

type registry[T any] struct {
	kind  string
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry for items of the given kind.
func New[T any](kind string) Registry[T] {
	return &registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

func (r *registry[T]) Kind() string { return r.kind }

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s name cannot be empty", r.kind).
			WithDetail("kind", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return r.fail(errors.ErrAlreadyExists, "%s '%s' is already registered", name)
	}
	r.items[name] = item
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, r.fail(errors.ErrNotFound, "no %s registered for '%s'", name)
	}
	return item, nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry[T]) fail(code errors.ErrorCode, format, name string) error {
	return errors.Newf(code, format, r.kind, name).
		WithDetails(map[string]interface{}{"kind": r.kind, "name": name})
}

// MustRegister registers an item and panics if registration fails.
// Registration errors at construction time are programming errors.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s %s: %v", reg.Kind(), name, err))
	}
}
