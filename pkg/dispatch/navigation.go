package dispatch

import "github.com/arthur-debert/deeplink/pkg/deeplink"

// View is the main view the application should show.
type View string

const (
	ViewUnchanged    View = ""
	ViewSynchronize  View = "synchronize"
	ViewVerifyRemote View = "verify_remote"
)

// Task is a task the application should start right away.
type Task string

const (
	TaskNone             Task = ""
	TaskQuickSynchronize Task = "quick_synchronize"
)

// Navigation describes what the application should do for one link.
type Navigation struct {
	Action   deeplink.Action `json:"action" yaml:"action" toml:"action"`
	View     View            `json:"view,omitempty" yaml:"view,omitempty" toml:"view,omitempty"`
	Task     Task            `json:"task,omitempty" yaml:"task,omitempty" toml:"task,omitempty"`
	Profile  string          `json:"profile,omitempty" yaml:"profile,omitempty" toml:"profile,omitempty"`
	TaskID   string          `json:"task_id,omitempty" yaml:"task_id,omitempty" toml:"task_id,omitempty"`
	Estimate bool            `json:"estimate,omitempty" yaml:"estimate,omitempty" toml:"estimate,omitempty"`
}
