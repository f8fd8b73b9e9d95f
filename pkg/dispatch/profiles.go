package dispatch

import (
	stderrors "errors"

	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/errors"
)

// maxSuggestDistance bounds how different a suggested profile may be.
const maxSuggestDistance = 3

// Profiles is the caller's view of which profile names are valid.
type Profiles struct {
	Known []string
	// Default is accepted without being listed. Empty disables the bypass.
	Default string
	// Suggest attaches the closest known name to NO_VALID_PROFILE errors.
	Suggest bool
}

// Validate checks name against the known list.
func (p Profiles) Validate(name string) error {
	if p.Default != "" && name == p.Default {
		return nil
	}
	err := deeplink.ValidateProfile(name, p.Known)
	if err == nil || !p.Suggest {
		return err
	}

	var dlErr *errors.DeeplinkError
	if suggestion, ok := p.closest(name); ok && stderrors.As(err, &dlErr) {
		dlErr.WithDetail("suggestion", suggestion)
	}
	return err
}

func (p Profiles) closest(name string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range p.Known {
		if d := levenshtein.ComputeDistance(name, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best, best != ""
}
