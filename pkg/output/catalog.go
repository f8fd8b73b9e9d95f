package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/charmbracelet/glamour"
)

// CatalogEntry describes one recognised action.
type CatalogEntry struct {
	Action      deeplink.Action `json:"action" yaml:"action" toml:"action"`
	Parameters  string          `json:"parameters" yaml:"parameters" toml:"parameters"`
	Example     string          `json:"example" yaml:"example" toml:"example"`
	Description string          `json:"description" yaml:"description" toml:"description"`
}

// Catalog lists the actions an interpreter recognises.
type Catalog struct {
	Scheme  string         `json:"scheme" yaml:"scheme" toml:"scheme"`
	Actions []CatalogEntry `json:"actions" yaml:"actions" toml:"action"`
}

type catalogShape struct {
	params      []deeplink.QueryParameter
	description string
}

var catalogShapes = map[deeplink.Action]catalogShape{
	deeplink.ActionQuickTask: {
		description: "Open synchronize and start a quick task",
	},
	deeplink.ActionLoadProfile: {
		params:      []deeplink.QueryParameter{deeplink.Param("profile", "Pictures")},
		description: "Load a profile",
	},
	deeplink.ActionLoadProfileAndEstimate: {
		params:      []deeplink.QueryParameter{deeplink.Param("profile", "Pictures")},
		description: "Load a profile and estimate it",
	},
	deeplink.ActionLoadProfileAndVerify: {
		params: []deeplink.QueryParameter{
			deeplink.Param("profile", "Pictures"),
			deeplink.Param("id", "Pictures_backup"),
		},
		description: "Load a profile and verify one task against the remote",
	},
}

// NewCatalog builds the catalog with example links for interp's scheme.
func NewCatalog(interp *deeplink.Interpreter) (Catalog, error) {
	c := Catalog{Scheme: interp.Scheme()}
	for _, action := range deeplink.Actions() {
		shape := catalogShapes[action]
		u, err := interp.BuildURL(string(action), shape.params)
		if err != nil {
			return Catalog{}, err
		}
		c.Actions = append(c.Actions, CatalogEntry{
			Action:      action,
			Parameters:  parameterShape(shape.params),
			Example:     u.String(),
			Description: shape.description,
		})
	}
	return c, nil
}

func parameterShape(params []deeplink.QueryParameter) string {
	if len(params) == 0 {
		return "none"
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = fmt.Sprintf("%s=<%s>", p.Name, p.Name)
	}
	return strings.Join(names, "&")
}

// Markdown renders the catalog as a markdown table.
func (c Catalog) Markdown() string {
	var b strings.Builder
	b.WriteString("# Deep link actions\n\n")
	fmt.Fprintf(&b, "Scheme: `%s`\n\n", c.Scheme)
	b.WriteString("| Action | Parameters | Example | Description |\n")
	b.WriteString("|--------|------------|---------|-------------|\n")
	for _, e := range c.Actions {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` | %s |\n", e.Action, e.Parameters, e.Example, e.Description)
	}
	return b.String()
}

// RenderCatalog writes the catalog: through glamour in terminal mode,
// as markdown in text mode, as data otherwise.
func (r *Renderer) RenderCatalog(c Catalog) error {
	switch {
	case r.format.Structured():
		return r.encode(c)
	case r.format == FormatTerminal:
		tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to create markdown renderer")
		}
		rendered, err := tr.Render(c.Markdown())
		if err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to render markdown")
		}
		return r.write(rendered)
	default:
		return r.write(c.Markdown())
	}
}
