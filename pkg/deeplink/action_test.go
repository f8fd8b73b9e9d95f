package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		host    string
		want    Action
		ok      bool
		profile bool
	}{
		{"quicktask", ActionQuickTask, true, false},
		{"loadprofile", ActionLoadProfile, true, true},
		{"loadprofileandestimate", ActionLoadProfileAndEstimate, true, true},
		{"loadprofileandverify", ActionLoadProfileAndVerify, true, true},
		{"QuickTask", "", false, false},
		{"", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			got, ok := ParseAction(tt.host)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, Action(tt.host).Valid())
			assert.Equal(t, tt.profile, got.RequiresProfile())
		})
	}
}

func TestActionsReturnsCopy(t *testing.T) {
	list := Actions()
	assert.Equal(t, []Action{ActionQuickTask, ActionLoadProfile, ActionLoadProfileAndEstimate, ActionLoadProfileAndVerify}, list)

	list[0] = "changed"
	assert.Equal(t, ActionQuickTask, Actions()[0])
	assert.Equal(t, "quicktask", ActionQuickTask.String())
}
