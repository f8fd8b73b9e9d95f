package deeplink

import (
	"net/url"
	"strings"
)

// QueryParameter is one name/value pair of a deep link query.
// A nil Value means the parameter was given without '=' (?id), which is
// not the same as an empty value (?id=).
type QueryParameter struct {
	Name  string  `json:"name" yaml:"name" toml:"name"`
	Value *string `json:"value" yaml:"value" toml:"value,omitempty"`
}

// Param returns a parameter with a value.
func Param(name, value string) QueryParameter {
	return QueryParameter{Name: name, Value: &value}
}

// NameOnly returns a parameter without a value.
func NameOnly(name string) QueryParameter {
	return QueryParameter{Name: name}
}

// HasValue reports whether the parameter carries a value, possibly empty.
func (p QueryParameter) HasValue() bool {
	return p.Value != nil
}

// ValueOr returns the value, or def when the value is absent.
func (p QueryParameter) ValueOr(def string) string {
	if p.Value == nil {
		return def
	}
	return *p.Value
}

// Equal compares name and value, treating absent and empty as different.
func (p QueryParameter) Equal(o QueryParameter) bool {
	if p.Name != o.Name || p.HasValue() != o.HasValue() {
		return false
	}
	return p.Value == nil || *p.Value == *o.Value
}

func (p QueryParameter) String() string {
	if p.Value == nil {
		return p.Name
	}
	return p.Name + "=" + *p.Value
}

// parseQuery splits a raw query into parameters, keeping their order.
// '+' is taken literally; spaces must arrive as %20. An empty query has no
// parameters, but an empty segment between '&'s is a parameter with an
// empty name.
func parseQuery(raw string) ([]QueryParameter, error) {
	if raw == "" {
		return nil, nil
	}
	var params []QueryParameter
	for _, part := range strings.Split(raw, "&") {
		rawName, rawValue, hasValue := strings.Cut(part, "=")
		name, err := url.PathUnescape(rawName)
		if err != nil {
			return nil, err
		}
		if !hasValue {
			params = append(params, NameOnly(name))
			continue
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, err
		}
		params = append(params, Param(name, value))
	}
	return params, nil
}

// encodeQuery is the inverse of parseQuery.
func encodeQuery(params []QueryParameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		part := escapeQueryComponent(p.Name)
		if p.Value != nil {
			part += "=" + escapeQueryComponent(*p.Value)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "&")
}

func escapeQueryComponent(s string) string {
	// QueryEscape writes spaces as '+', which parseQuery would keep literally.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func cloneParams(params []QueryParameter) []QueryParameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]QueryParameter, len(params))
	for i, p := range params {
		out[i] = QueryParameter{Name: p.Name}
		if p.Value != nil {
			v := *p.Value
			out[i].Value = &v
		}
	}
	return out
}
