// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, code matching and details

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_scheme",
			code:    errors.ErrInvalidScheme,
			message: "Invalid URL scheme",
			wantStr: "[INVALID_SCHEME] Invalid URL scheme",
		},
		{
			name:    "no_action",
			code:    errors.ErrNoAction,
			message: "No action URL scheme",
			wantStr: "[NO_ACTION] No action URL scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNoValidProfile, "profile %q is not known", "Pictures")
	assert.Equal(t, `profile "Pictures" is not known`, err.Message)
	assert.Equal(t, errors.ErrNoValidProfile, err.Code)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("invalid URL escape \"%zz\"")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInvalidURL, "Invalid URL")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrInvalidURL, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, `[INVALID_URL] Invalid URL: invalid URL escape "%zz"`, err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigParse, "failed to parse %s", "config.toml")
		assert.Equal(t, "failed to parse config.toml", err.Message)
	})
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := errors.New(errors.ErrOnlyOneActionAllowed, "")
	err := fmt.Errorf("routing: %w", errors.New(errors.ErrOnlyOneActionAllowed, "Only one action allowed"))

	assert.True(t, stderrors.Is(err, sentinel))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrNoAction, "")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrNoValidProfile, "unknown profile").
		WithDetail("profile", "Picturs").
		WithDetails(map[string]interface{}{"suggestion": "Pictures"})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "Picturs", details["profile"])
	assert.Equal(t, "Pictures", details["suggestion"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	var zero errors.DeeplinkError
	zero.WithDetail("k", 1)
	assert.Equal(t, 1, zero.Details["k"])
}

func TestCodeHelpers(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errors.New(errors.ErrInvalidScheme, "bad"))

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidScheme))
	assert.False(t, errors.IsErrorCode(err, errors.ErrInvalidURL))
	assert.Equal(t, errors.ErrInvalidScheme, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
}
