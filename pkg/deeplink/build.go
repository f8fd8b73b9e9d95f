package deeplink

import (
	"net/url"

	"github.com/arthur-debert/deeplink/pkg/errors"
)

// BuildURL assembles a link from the reserved scheme, host and parameters,
// keeping parameter order. It fails when the host is empty or holds
// characters outside [A-Za-z0-9._~-], or when a parameter has no name.
func (i *Interpreter) BuildURL(host string, params []QueryParameter) (*url.URL, error) {
	if !validHost(host) {
		return nil, errors.Newf(errors.ErrInvalidURL, "Invalid URL host %q", host).WithDetail("host", host)
	}
	for idx, p := range params {
		if p.Name == "" {
			return nil, errors.New(errors.ErrInvalidURL, "Invalid URL: query parameter without name").
				WithDetail("index", idx)
		}
	}
	return &url.URL{
		Scheme:   i.scheme,
		Host:     host,
		RawQuery: encodeQuery(params),
	}, nil
}

// BuildResultURL builds the link that classifies back into r.
func (i *Interpreter) BuildResultURL(r Result) (*url.URL, error) {
	return i.BuildURL(string(r.Action), r.Params)
}

func validHost(host string) bool {
	if host == "" {
		return false
	}
	for _, c := range host {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '.', c == '_', c == '~', c == '-':
		default:
			return false
		}
	}
	return true
}
