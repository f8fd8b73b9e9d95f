package output

import (
	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/dispatch"
	"github.com/arthur-debert/deeplink/pkg/errors"
)

// Entry is the outcome for one input link.
type Entry struct {
	Input      string                    `json:"input" yaml:"input" toml:"input"`
	Matched    bool                      `json:"matched" yaml:"matched" toml:"matched"`
	Action     deeplink.Action           `json:"action,omitempty" yaml:"action,omitempty" toml:"action,omitempty"`
	Params     []deeplink.QueryParameter `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	Navigation *dispatch.Navigation      `json:"navigation,omitempty" yaml:"navigation,omitempty" toml:"navigation,omitempty"`
	PendingID  string                    `json:"pending_id,omitempty" yaml:"pending_id,omitempty" toml:"pending_id,omitempty"`
	Error      string                    `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	Code       errors.ErrorCode          `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`
	Details    map[string]interface{}    `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

// NewEntry records an interpretation outcome.
func NewEntry(input string, res deeplink.Result, matched bool, err error) Entry {
	e := Entry{Input: input}
	if err != nil {
		return e.WithError(err)
	}
	e.Matched = matched
	if matched {
		e.Action = res.Action
		e.Params = res.Params
	}
	return e
}

// WithError records err, keeping its code and details when it has them.
func (e Entry) WithError(err error) Entry {
	if err == nil {
		return e
	}
	e.Error = err.Error()
	e.Code = errors.GetErrorCode(err)
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		e.Details = details
	}
	return e
}

// WithNavigation records a routed navigation.
func (e Entry) WithNavigation(nav dispatch.Navigation, pending dispatch.Pending) Entry {
	e.Matched = true
	e.Action = nav.Action
	e.Params = pending.Result.Params
	e.Navigation = &nav
	e.PendingID = pending.ID.String()
	return e
}

// Failed reports whether the entry carries an error.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// Report is the outcome for a batch of links, in input order.
type Report struct {
	Entries []Entry `json:"entries" yaml:"entries" toml:"entry"`
}

// Add appends an entry.
func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Failures counts the entries that carry an error.
func (r Report) Failures() int {
	n := 0
	for _, e := range r.Entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

// Unmatched counts the entries that were valid but matched no action.
func (r Report) Unmatched() int {
	n := 0
	for _, e := range r.Entries {
		if !e.Failed() && !e.Matched {
			n++
		}
	}
	return n
}
