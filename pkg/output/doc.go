// Package output renders interpretation reports and the action catalog.
//
// Every report can be written as styled terminal text, plain text, JSON,
// YAML or TOML. The terminal and plain text layouts are identical; the
// terminal one only adds lipgloss styles, defined in styles.yaml:
//
//	colors:
//	  accent: {light: "#5A56E0", dark: "#7571F9"}
//	styles:
//	  Action: {bold: true, foreground: accent}
//
// FormatAuto picks term for color capable terminals and text otherwise,
// honoring NO_COLOR.
package output
