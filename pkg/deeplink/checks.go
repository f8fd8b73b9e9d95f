package deeplink

import (
	"slices"

	"github.com/arthur-debert/deeplink/pkg/errors"
)

// Sentinels for errors.Is. A DeeplinkError matches any sentinel with the same code.
var (
	ErrInvalidScheme        = errors.New(errors.ErrInvalidScheme, "Invalid URL scheme")
	ErrInvalidURL           = errors.New(errors.ErrInvalidURL, "Invalid URL")
	ErrNoAction             = errors.New(errors.ErrNoAction, "No action URL scheme")
	ErrNoValidProfile       = errors.New(errors.ErrNoValidProfile, "No valid profile")
	ErrOnlyOneActionAllowed = errors.New(errors.ErrOnlyOneActionAllowed, "Only one action allowed")
)

// NoAction returns the error a caller raises once Classify found nothing.
func NoAction() error {
	return errors.New(errors.ErrNoAction, "No action URL scheme")
}

// ValidateProfile succeeds when name is in known. The comparison is exact.
func ValidateProfile(name string, known []string) error {
	if slices.Contains(known, name) {
		return nil
	}
	return errors.Newf(errors.ErrNoValidProfile, "No valid profile %q", name).
		WithDetail("profile", name)
}

// ValidateNoPendingAction succeeds when pending is nil. The marker belongs
// to the caller; any non-nil value means an action is still in flight.
func ValidateNoPendingAction[T any](pending *T) error {
	if pending == nil {
		return nil
	}
	return errors.New(errors.ErrOnlyOneActionAllowed, "Only one deep link action allowed at a time")
}
