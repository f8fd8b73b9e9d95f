package deeplink

import "strings"

// Result is a classified deep link: the action plus the query parameters in
// the order they appeared. Params is nil for quicktask.
type Result struct {
	Action Action           `json:"action" yaml:"action" toml:"action"`
	Params []QueryParameter `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

// Equal compares action and the full parameter sequence.
func (r Result) Equal(o Result) bool {
	if r.Action != o.Action || len(r.Params) != len(o.Params) {
		return false
	}
	for i := range r.Params {
		if !r.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

// Profile returns the value of the leading profile parameter.
func (r Result) Profile() (string, bool) {
	if len(r.Params) == 0 || r.Params[0].Name != ProfileParam {
		return "", false
	}
	return r.Params[0].ValueOr(""), true
}

// Param returns the first parameter with the given name.
func (r Result) Param(name string) (QueryParameter, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p, true
		}
	}
	return QueryParameter{}, false
}

func (r Result) String() string {
	if len(r.Params) == 0 {
		return string(r.Action)
	}
	parts := make([]string, len(r.Params))
	for i, p := range r.Params {
		parts[i] = p.String()
	}
	return string(r.Action) + "?" + strings.Join(parts, "&")
}
