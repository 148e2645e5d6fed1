// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/errors"
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
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "cache directory not found",
			wantStr: "[NOT_FOUND] cache directory not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "path is relative",
			wantStr: "[INVALID_INPUT] path is relative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrProjectInvalid, "invalid project id %q", "a/b")
	assert.Equal(t, `invalid project id "a/b"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "load failed")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] load failed: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrNotFound, "missing"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInternal, "missing")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing").WithDetail("path", "/tmp/x")

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "/tmp/x", details["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

type codedOnly struct{}

func (codedOnly) Error() string           { return "coded only" }
func (codedOnly) Code() errors.ErrorCode { return errors.ErrDirCreate }

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"coded_error", errors.New(errors.ErrEnvMissing, "no user"), errors.ErrEnvMissing},
		{"wrapped_coded_error", fmt.Errorf("ctx: %w", errors.New(errors.ErrRemove, "x")), errors.ErrRemove},
		{"coder_interface", fmt.Errorf("ctx: %w", codedOnly{}), errors.ErrDirCreate},
		{"plain_error", stderrors.New("plain"), errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetErrorCode(tt.err))
			assert.True(t, errors.IsErrorCode(tt.err, tt.want))
		})
	}

	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
}
