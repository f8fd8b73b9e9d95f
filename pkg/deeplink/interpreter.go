package deeplink

import (
	"net/url"

	"github.com/arthur-debert/deeplink/pkg/errors"
)

// DefaultScheme is the scheme reserved by the application.
const DefaultScheme = "rsyncuiapp"

// Components is a deep link after scheme and structure validation.
type Components struct {
	Scheme string
	Host   string
	Query  []QueryParameter
}

// Interpreter validates and classifies links for one reserved scheme.
// It holds no other state.
type Interpreter struct {
	scheme string
}

// New returns an interpreter for scheme, or for DefaultScheme when scheme is empty.
func New(scheme string) *Interpreter {
	if scheme == "" {
		scheme = DefaultScheme
	}
	return &Interpreter{scheme: scheme}
}

// Scheme returns the reserved scheme.
func (i *Interpreter) Scheme() string {
	return i.scheme
}

// ValidateScheme checks that u uses the reserved scheme and decomposes it
// into host and ordered query parameters.
//
// url.Parse lower-cases the scheme, so a *url.URL obtained from it no longer
// holds the case that was written and "RSYNCUIAPP://quicktask" passes here.
// Callers holding the raw text should use ValidateString, which compares
// the scheme exactly as written.
func (i *Interpreter) ValidateScheme(u *url.URL) (Components, error) {
	if u == nil {
		return Components{}, errors.New(errors.ErrInvalidURL, "Invalid URL")
	}
	if u.Scheme != i.scheme {
		return Components{}, invalidScheme(u.Scheme, i.scheme)
	}
	return decompose(u)
}

// ValidateString validates raw like ValidateScheme. The scheme is read and
// compared before anything else is parsed, so a foreign scheme is reported
// as such whatever follows it. Both a scheme and a host are required.
func (i *Interpreter) ValidateString(raw string) (Components, error) {
	scheme, ok := rawScheme(raw)
	if !ok {
		return Components{}, errors.New(errors.ErrInvalidURL, "Invalid URL: missing scheme").WithDetail("url", raw)
	}
	if scheme != i.scheme {
		return Components{}, invalidScheme(scheme, i.scheme)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Components{}, errors.Wrap(err, errors.ErrInvalidURL, "Invalid URL").WithDetail("url", raw)
	}
	if u.Host == "" {
		return Components{}, errors.New(errors.ErrInvalidURL, "Invalid URL: missing host").WithDetail("url", raw)
	}
	c, err := decompose(u)
	if err != nil {
		return Components{}, err
	}
	c.Scheme = scheme
	return c, nil
}

// rawScheme returns the scheme as written, following the grammar url.Parse
// uses: a letter, then letters, digits, '+', '-' or '.', up to the first ':'.
func rawScheme(raw string) (string, bool) {
	for idx := 0; idx < len(raw); idx++ {
		c := raw[idx]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9', c == '+', c == '-', c == '.':
			if idx == 0 {
				return "", false
			}
		case c == ':':
			return raw[:idx], idx > 0
		default:
			return "", false
		}
	}
	return "", false
}

func invalidScheme(got, expected string) error {
	return errors.Newf(errors.ErrInvalidScheme, "Invalid URL scheme %q", got).
		WithDetails(map[string]interface{}{"scheme": got, "expected": expected})
}

// decompose accepts only host and query; user info is rejected rather than
// dropped.
func decompose(u *url.URL) (Components, error) {
	if u.User != nil {
		return Components{}, errors.New(errors.ErrInvalidURL, "Invalid URL: user info is not allowed").
			WithDetail("host", u.Host)
	}
	params, err := parseQuery(u.RawQuery)
	if err != nil {
		return Components{}, errors.Wrap(err, errors.ErrInvalidURL, "Invalid URL query").
			WithDetail("query", u.RawQuery)
	}
	return Components{Scheme: u.Scheme, Host: u.Host, Query: params}, nil
}

// Classify maps validated components onto an action. ok is false when the
// link does not correspond to any recognised action.
//
// Without query parameters only quicktask matches. With parameters the first
// one must be named profile, and then the host must name a profile action;
// the whole parameter list is kept.
func (i *Interpreter) Classify(c Components) (Result, bool) {
	if len(c.Query) == 0 {
		if c.Host == string(ActionQuickTask) {
			return Result{Action: ActionQuickTask}, true
		}
		return Result{}, false
	}

	if c.Query[0].Name != ProfileParam {
		return Result{}, false
	}
	action, ok := ParseAction(c.Host)
	if !ok || !action.RequiresProfile() {
		return Result{}, false
	}
	return Result{Action: action, Params: cloneParams(c.Query)}, true
}

// Interpret validates u and classifies it in one step.
func (i *Interpreter) Interpret(u *url.URL) (Result, bool, error) {
	c, err := i.ValidateScheme(u)
	if err != nil {
		return Result{}, false, err
	}
	res, ok := i.Classify(c)
	return res, ok, nil
}

// InterpretString is Interpret for a raw string.
func (i *Interpreter) InterpretString(raw string) (Result, bool, error) {
	c, err := i.ValidateString(raw)
	if err != nil {
		return Result{}, false, err
	}
	res, ok := i.Classify(c)
	return res, ok, nil
}
