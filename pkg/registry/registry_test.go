package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	reg := New[int]("action handler")
	assert.Equal(t, "action handler", reg.Kind())
	assert.Empty(t, reg.List())

	require.NoError(t, reg.Register("quicktask", 1))
	require.NoError(t, reg.Register("loadprofile", 2))

	got, err := reg.Get("loadprofile")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, []string{"loadprofile", "quicktask"}, reg.List())
}

func TestRegisterErrors(t *testing.T) {
	reg := New[string]("action handler")

	err := reg.Register("", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "action handler name cannot be empty")

	require.NoError(t, reg.Register("quicktask", "x"))
	err = reg.Register("quicktask", "y")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Contains(t, err.Error(), "action handler 'quicktask' is already registered")

	got, _ := reg.Get("quicktask")
	assert.Equal(t, "x", got, "duplicate registration keeps the first item")
}

func TestGetMissingNamesTheKind(t *testing.T) {
	reg := New[string]("action handler")

	got, err := reg.Get("estimate")
	assert.Equal(t, "", got)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "no action handler registered for 'estimate'")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "action handler", details["kind"])
	assert.Equal(t, "estimate", details["name"])
}

func TestMustRegister(t *testing.T) {
	reg := New[int]("action handler")
	assert.NotPanics(t, func() { MustRegister(reg, "quicktask", 1) })
	assert.PanicsWithValue(t,
		"failed to register action handler quicktask: [ALREADY_EXISTS] action handler 'quicktask' is already registered",
		func() { MustRegister(reg, "quicktask", 2) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]("action handler")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("action%d", i)
			assert.NoError(t, reg.Register(name, i))
			_, err := reg.Get(name)
			assert.NoError(t, err)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.List(), 50)
}
