package dispatch

import (
	stderrors "errors"
	"net/url"
	"sync"
	"time"

	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/arthur-debert/deeplink/pkg/registry"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Pending marks the deep link action currently in flight.
type Pending struct {
	ID      uuid.UUID       `json:"id" yaml:"id" toml:"id"`
	Result  deeplink.Result `json:"result" yaml:"result" toml:"result"`
	Started time.Time       `json:"started" yaml:"started" toml:"started"`
}

// Options configures a Dispatcher.
type Options struct {
	// Interpreter defaults to one for deeplink.DefaultScheme
	Interpreter *deeplink.Interpreter
	Profiles    Profiles
	// Now defaults to time.Now
	Now func() time.Time
}

// Dispatcher routes deep links to navigation, one at a time.
type Dispatcher struct {
	interp   *deeplink.Interpreter
	profiles Profiles
	handlers registry.Registry[Handler]
	now      func() time.Time
	logger   zerolog.Logger

	mu      sync.Mutex
	pending *Pending
}

// New creates a Dispatcher with the built-in handlers.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		interp:   opts.Interpreter,
		profiles: opts.Profiles,
		handlers: defaultHandlers(),
		now:      opts.Now,
		logger:   logging.GetLogger("dispatch"),
	}
	if d.interp == nil {
		d.interp = deeplink.New("")
	}
	if d.now == nil {
		d.now = time.Now
	}
	return d
}

// Handle interprets raw and begins its action. A link that classifies to
// nothing is reported as NO_ACTION.
func (d *Dispatcher) Handle(raw string) (Navigation, Pending, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.guard(); err != nil {
		return Navigation{}, Pending{}, err
	}

	res, ok, err := d.interp.InterpretString(raw)
	if err != nil {
		d.logger.Warn().Err(err).Str("url", raw).Msg("Rejected deep link")
		return Navigation{}, Pending{}, err
	}
	if !ok {
		d.logger.Warn().Str("url", raw).Msg("No action for deep link")
		return Navigation{}, Pending{}, noActionFor(raw)
	}
	return d.begin(res)
}

// HandleURL is Handle for an already parsed URL.
func (d *Dispatcher) HandleURL(u *url.URL) (Navigation, Pending, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.guard(); err != nil {
		return Navigation{}, Pending{}, err
	}

	res, ok, err := d.interp.Interpret(u)
	if err != nil {
		return Navigation{}, Pending{}, err
	}
	if !ok {
		return Navigation{}, Pending{}, noActionFor(u.String())
	}
	return d.begin(res)
}

// Begin plans the navigation for an already classified result and marks it
// as in flight.
func (d *Dispatcher) Begin(res deeplink.Result) (Navigation, Pending, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.guard(); err != nil {
		return Navigation{}, Pending{}, err
	}
	return d.begin(res)
}

// Finish clears the in-flight marker with the given id.
func (d *Dispatcher) Finish(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil || d.pending.ID != id {
		return errors.Newf(errors.ErrNotFound, "no pending action with id %s", id).
			WithDetail("id", id.String())
	}
	d.logger.Debug().
		Str("id", id.String()).
		Str("action", string(d.pending.Result.Action)).
		Dur("elapsed", d.now().Sub(d.pending.Started)).
		Msg("Deep link action finished")
	d.pending = nil
	return nil
}

// Pending returns the action in flight, if any.
func (d *Dispatcher) Pending() (Pending, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return Pending{}, false
	}
	return *d.pending, true
}

// Actions lists the actions that have a handler.
func (d *Dispatcher) Actions() []string {
	return d.handlers.List()
}

// guard must be called with mu held.
func (d *Dispatcher) guard() error {
	err := deeplink.ValidateNoPendingAction(d.pending)
	if err != nil {
		d.logger.Warn().
			Str("pending", d.pending.ID.String()).
			Str("action", string(d.pending.Result.Action)).
			Msg("Deep link rejected, another action is pending")
	}
	return err
}

// begin must be called with mu held and the guard passed.
func (d *Dispatcher) begin(res deeplink.Result) (Navigation, Pending, error) {
	handler, err := d.handlers.Get(string(res.Action))
	if err != nil {
		return Navigation{}, Pending{}, errors.Wrap(err, errors.ErrNoAction, "cannot route deep link").
			WithDetail("action", string(res.Action))
	}

	nav, err := handler(res, d.profiles)
	if err != nil {
		d.logger.Warn().Err(err).Str("result", res.String()).Msg("Deep link not routed")
		return Navigation{}, Pending{}, err
	}

	d.pending = &Pending{ID: uuid.New(), Result: res, Started: d.now()}
	d.logger.Info().
		Str("id", d.pending.ID.String()).
		Str("action", string(nav.Action)).
		Str("view", string(nav.View)).
		Str("profile", nav.Profile).
		Msg("Deep link action started")
	return nav, *d.pending, nil
}

func noActionFor(raw string) error {
	err := deeplink.NoAction()
	var dlErr *errors.DeeplinkError
	if stderrors.As(err, &dlErr) {
		dlErr.WithDetail("url", raw)
	}
	return err
}
