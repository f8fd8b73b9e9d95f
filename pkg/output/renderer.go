package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer writes reports in one format.
type Renderer struct {
	w      io.Writer
	format Format
	styles Styles
}

// NewRenderer creates a renderer for w. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format Format) (*Renderer, error) {
	log := logging.GetLogger("output")

	resolved := Resolve(format, w, false)
	r := &Renderer{w: w, format: resolved}

	if resolved == FormatTerminal {
		lr := lipgloss.NewRenderer(w)
		styles, err := LoadStyles(lr, defaultStyles)
		if err != nil {
			return nil, err
		}
		r.styles = styles
		log.Debug().
			Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).
			Msg("Terminal renderer created")
	}

	log.Debug().
		Str("requested", format.String()).
		Str("format", resolved.String()).
		Msg("Renderer created")
	return r, nil
}

// Format returns the resolved format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes the report.
func (r *Renderer) Render(rep Report) error {
	if r.format.Structured() {
		return r.encode(rep)
	}
	return r.write(r.layout(rep))
}

// RenderURL writes a single constructed link.
func (r *Renderer) RenderURL(u string) error {
	if r.format.Structured() {
		return r.encode(map[string]string{"url": u})
	}
	return r.write(r.paint("Link", u) + "\n")
}

// RenderText writes preformatted text as is, or as {"text": ...} for data formats.
func (r *Renderer) RenderText(key, text string) error {
	if r.format.Structured() {
		return r.encode(map[string]string{key: text})
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return r.write(text)
}

func (r *Renderer) layout(rep Report) string {
	var b strings.Builder
	for i, e := range rep.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.paint("Link", e.Input))
		b.WriteString("\n")

		switch {
		case e.Failed():
			r.field(&b, "error", r.paint("Error", e.Error))
			if s, ok := e.Details["suggestion"]; ok {
				r.field(&b, "hint", r.paint("Hint", fmt.Sprintf("did you mean %q?", s)))
			}
		case !e.Matched:
			r.field(&b, "action", r.paint("NoMatch", "none"))
		default:
			r.field(&b, "action", r.paint("Action", string(e.Action)))
			for _, p := range e.Params {
				r.field(&b, "param", r.paint("Value", p.String()))
			}
			if nav := e.Navigation; nav != nil {
				if nav.View != "" {
					r.field(&b, "view", r.paint("Value", string(nav.View)))
				}
				if nav.Task != "" {
					r.field(&b, "task", r.paint("Value", string(nav.Task)))
				}
				if nav.Profile != "" {
					r.field(&b, "profile", r.paint("Value", nav.Profile))
				}
				if nav.TaskID != "" {
					r.field(&b, "task id", r.paint("Value", nav.TaskID))
				}
				if nav.Estimate {
					r.field(&b, "estimate", r.paint("Value", "yes"))
				}
			}
			if e.PendingID != "" {
				r.field(&b, "pending", r.paint("Success", e.PendingID))
			}
		}
	}

	if len(rep.Entries) > 1 {
		b.WriteString("\n")
		b.WriteString(r.paint("Summary", fmt.Sprintf("%d links, %d failed, %d without action",
			len(rep.Entries), rep.Failures(), rep.Unmatched())))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", r.paint("Label", fmt.Sprintf("%-8s", label)), value)
}

// paint applies a named style in terminal mode and is a no-op otherwise.
func (r *Renderer) paint(style, s string) string {
	if r.styles == nil {
		return s
	}
	return r.styles.Get(style).Render(s)
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

func (r *Renderer) encode(v interface{}) error {
	var err error
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	case FormatTOML:
		err = toml.NewEncoder(r.w).Encode(v)
	default:
		return errors.Newf(errors.ErrInternal, "format %s is not a data format", r.format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to encode %s", r.format)
	}
	return nil
}
