package deeplink_test

import (
	"testing"

	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNoAction(t *testing.T) {
	err := deeplink.NoAction()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoAction))
	assert.ErrorIs(t, err, deeplink.ErrNoAction)
	assert.Contains(t, err.Error(), "No action")
}

func TestValidateProfile(t *testing.T) {
	known := []string{"Pictures", "Samsung", "default"}

	tests := []struct {
		name    string
		profile string
		known   []string
		wantErr bool
	}{
		{"present", "Pictures", known, false},
		{"present_last", "default", known, false},
		{"absent", "Music", known, true},
		{"prefix_is_not_a_match", "Pic", known, true},
		{"superstring_is_not_a_match", "Pictures2", known, true},
		{"case_differs", "pictures", known, true},
		{"empty_name", "", known, true},
		{"empty_list", "Pictures", nil, true},
		{"empty_name_listed", "", []string{""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := deeplink.ValidateProfile(tt.profile, tt.known)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsErrorCode(err, errors.ErrNoValidProfile), "got %v", err)
			assert.Equal(t, tt.profile, errors.GetErrorDetails(err)["profile"])
		})
	}
}

func TestValidateNoPendingAction(t *testing.T) {
	t.Run("nil_marker", func(t *testing.T) {
		assert.NoError(t, deeplink.ValidateNoPendingAction[deeplink.Result](nil))
	})

	t.Run("pending_result", func(t *testing.T) {
		pending := &deeplink.Result{Action: deeplink.ActionQuickTask}
		err := deeplink.ValidateNoPendingAction(pending)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOnlyOneActionAllowed))
	})

	t.Run("zero_value_marker_still_counts", func(t *testing.T) {
		var marker string
		assert.ErrorIs(t, deeplink.ValidateNoPendingAction(&marker), deeplink.ErrOnlyOneActionAllowed)
	})
}
