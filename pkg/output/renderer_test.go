// pkg/output/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test report rendering in every output format

package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/dispatch"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	var rep Report
	rep.Add(NewEntry("rsyncuiapp://loadprofile?profile=Samsung",
		deeplink.Result{Action: deeplink.ActionLoadProfile, Params: []deeplink.QueryParameter{deeplink.Param("profile", "Samsung")}},
		true, nil))
	rep.Add(NewEntry("rsyncuiapp://unknownhost", deeplink.Result{}, false, nil))
	rep.Add(NewEntry("otherscheme://quicktask", deeplink.Result{}, false,
		errors.New(errors.ErrInvalidScheme, "Invalid URL scheme")))
	return rep
}

func render(t *testing.T, format Format, rep Report) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, format)
	require.NoError(t, err)
	require.NoError(t, r.Render(rep))
	return buf.String()
}

func TestNewEntry(t *testing.T) {
	err := errors.New(errors.ErrNoValidProfile, "No valid profile").WithDetail("suggestion", "Pictures")
	e := NewEntry("x", deeplink.Result{Action: deeplink.ActionQuickTask}, true, err)

	assert.True(t, e.Failed())
	assert.False(t, e.Matched)
	assert.Empty(t, e.Action)
	assert.Equal(t, errors.ErrNoValidProfile, e.Code)
	assert.Equal(t, "Pictures", e.Details["suggestion"])

	plain := NewEntry("y", deeplink.Result{}, false, stderrors.New("boom"))
	assert.Equal(t, errors.ErrUnknown, plain.Code)
	assert.Nil(t, plain.Details)
}

func TestReportCounts(t *testing.T) {
	rep := sampleReport()
	assert.Equal(t, 1, rep.Failures())
	assert.Equal(t, 1, rep.Unmatched())
}

func TestRenderText(t *testing.T) {
	out := render(t, FormatText, sampleReport())

	assert.Contains(t, out, "rsyncuiapp://loadprofile?profile=Samsung\n")
	assert.Contains(t, out, "  action   loadprofile\n")
	assert.Contains(t, out, "  param    profile=Samsung\n")
	assert.Contains(t, out, "  action   none\n")
	assert.Contains(t, out, "  error    [INVALID_SCHEME] Invalid URL scheme\n")
	assert.Contains(t, out, "3 links, 1 failed, 1 without action")
	assert.NotContains(t, out, "\x1b[", "text output is unstyled")
}

func TestRenderTextSingleEntryHasNoSummary(t *testing.T) {
	var rep Report
	rep.Add(NewEntry("rsyncuiapp://quicktask", deeplink.Result{Action: deeplink.ActionQuickTask}, true, nil))

	out := render(t, FormatText, rep)
	assert.Equal(t, "rsyncuiapp://quicktask\n  action   quicktask\n", out)
}

func TestRenderTextNavigation(t *testing.T) {
	id := uuid.New()
	nav := dispatch.Navigation{
		Action:  deeplink.ActionLoadProfileAndVerify,
		View:    dispatch.ViewVerifyRemote,
		Profile: "Pictures",
		TaskID:  "Pictures_backup",
	}
	pending := dispatch.Pending{ID: id, Result: deeplink.Result{
		Action: deeplink.ActionLoadProfileAndVerify,
		Params: []deeplink.QueryParameter{deeplink.Param("profile", "Pictures"), deeplink.Param("id", "Pictures_backup")},
	}}

	var rep Report
	rep.Add(Entry{Input: "link"}.WithNavigation(nav, pending))

	out := render(t, FormatText, rep)
	assert.Contains(t, out, "  view     verify_remote\n")
	assert.Contains(t, out, "  profile  Pictures\n")
	assert.Contains(t, out, "  task id  Pictures_backup\n")
	assert.Contains(t, out, "  pending  "+id.String()+"\n")
}

func TestRenderTextSuggestion(t *testing.T) {
	var rep Report
	rep.Add(Entry{Input: "link"}.WithError(
		errors.New(errors.ErrNoValidProfile, "No valid profile").WithDetail("suggestion", "Pictures")))

	out := render(t, FormatText, rep)
	assert.Contains(t, out, `did you mean "Pictures"?`)
}

func TestRenderTerminalKeepsLayout(t *testing.T) {
	out := render(t, FormatTerminal, sampleReport())
	assert.Contains(t, out, "loadprofile")
	assert.Contains(t, out, "[INVALID_SCHEME]")
}

func TestRenderJSON(t *testing.T) {
	out := render(t, FormatJSON, sampleReport())

	var decoded struct {
		Entries []struct {
			Input   string `json:"input"`
			Matched bool   `json:"matched"`
			Action  string `json:"action"`
			Params  []struct {
				Name  string  `json:"name"`
				Value *string `json:"value"`
			} `json:"params"`
			Code string `json:"code"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, "loadprofile", decoded.Entries[0].Action)
	require.Len(t, decoded.Entries[0].Params, 1)
	assert.Equal(t, "Samsung", *decoded.Entries[0].Params[0].Value)
	assert.False(t, decoded.Entries[1].Matched)
	assert.Equal(t, "INVALID_SCHEME", decoded.Entries[2].Code)
}

func TestRenderYAML(t *testing.T) {
	out := render(t, FormatYAML, sampleReport())

	var decoded map[string][]map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["entries"], 3)
	assert.Equal(t, "loadprofile", decoded["entries"][0]["action"])
	assert.Equal(t, "INVALID_SCHEME", decoded["entries"][2]["code"])
}

func TestRenderTOML(t *testing.T) {
	out := render(t, FormatTOML, sampleReport())

	var decoded map[string][]map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["entry"], 3)
	assert.Equal(t, "rsyncuiapp://unknownhost", decoded["entry"][1]["input"])
	assert.Equal(t, false, decoded["entry"][1]["matched"])
}

func TestRenderURL(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatText)
	require.NoError(t, err)
	require.NoError(t, r.RenderURL("rsyncuiapp://quicktask"))
	assert.Equal(t, "rsyncuiapp://quicktask\n", buf.String())

	buf.Reset()
	r, err = NewRenderer(&buf, FormatJSON)
	require.NoError(t, err)
	require.NoError(t, r.RenderURL("rsyncuiapp://quicktask"))
	assert.JSONEq(t, `{"url":"rsyncuiapp://quicktask"}`, buf.String())
}

func TestRenderText_Raw(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatText)
	require.NoError(t, err)
	require.NoError(t, r.RenderText("plist", "<plist/>"))
	assert.Equal(t, "<plist/>\n", buf.String())

	buf.Reset()
	r, err = NewRenderer(&buf, FormatYAML)
	require.NoError(t, err)
	require.NoError(t, r.RenderText("plist", "<plist/>"))
	assert.Contains(t, buf.String(), "plist:")
	assert.Contains(t, buf.String(), "<plist/>")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed") }

func TestRenderWriteFailure(t *testing.T) {
	r, err := NewRenderer(failingWriter{}, FormatText)
	require.NoError(t, err)
	assert.True(t, errors.IsErrorCode(r.Render(sampleReport()), errors.ErrRender))

	r, err = NewRenderer(failingWriter{}, FormatJSON)
	require.NoError(t, err)
	assert.True(t, errors.IsErrorCode(r.Render(sampleReport()), errors.ErrRender))
}

func TestLoadStyles(t *testing.T) {
	styles, err := LoadStyles(lipgloss.NewRenderer(&bytes.Buffer{}), defaultStyles)
	require.NoError(t, err)

	for _, name := range []string{"Link", "Action", "Label", "Value", "Error", "Hint", "NoMatch", "Summary", "Success"} {
		_, ok := styles[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
	assert.Equal(t, "plain", styles.Get("Missing").Render("plain"))

	_, err = LoadStyles(lipgloss.NewRenderer(&bytes.Buffer{}), []byte("colors: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestCatalog(t *testing.T) {
	c, err := NewCatalog(deeplink.New(""))
	require.NoError(t, err)

	assert.Equal(t, "rsyncuiapp", c.Scheme)
	require.Len(t, c.Actions, 4)
	assert.Equal(t, "rsyncuiapp://quicktask", c.Actions[0].Example)
	assert.Equal(t, "none", c.Actions[0].Parameters)
	assert.Equal(t, "rsyncuiapp://loadprofileandverify?profile=Pictures&id=Pictures_backup", c.Actions[3].Example)
	assert.Equal(t, "profile=<profile>&id=<id>", c.Actions[3].Parameters)

	md := c.Markdown()
	assert.True(t, strings.HasPrefix(md, "# Deep link actions\n"))
	assert.Contains(t, md, "| quicktask | `none` | `rsyncuiapp://quicktask` |")
}

func TestRenderCatalog(t *testing.T) {
	c, err := NewCatalog(deeplink.New("myapp"))
	require.NoError(t, err)

	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatText)
	require.NoError(t, err)
	require.NoError(t, r.RenderCatalog(c))
	assert.Equal(t, c.Markdown(), buf.String())

	buf.Reset()
	r, err = NewRenderer(&buf, FormatTerminal)
	require.NoError(t, err)
	require.NoError(t, r.RenderCatalog(c))
	assert.Contains(t, buf.String(), "Deep link actions")

	buf.Reset()
	r, err = NewRenderer(&buf, FormatTOML)
	require.NoError(t, err)
	require.NoError(t, r.RenderCatalog(c))
	var decoded Catalog
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, c, decoded)
}
