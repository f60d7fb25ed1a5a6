package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dnaka91/cargo-hatch/internal/errors"
)

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{oerrors.ExitSuccess, "Success"},
		{oerrors.ExitGeneralError, "General Error"},
		{oerrors.ExitConfigError, "Configuration Error"},
		{oerrors.ExitNotFound, "Not Found"},
		{oerrors.ExitCancelled, "Cancelled"},
		{42, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeName(tt.code))
		})
	}
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "config error",
			err:      oerrors.NewConfigError("bad", "", "", ""),
			wantCode: oerrors.ExitConfigError,
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("setting `x`: %w", oerrors.ErrCancelled),
			wantCode: oerrors.ExitCancelled,
		},
		{
			name:     "not found",
			err:      oerrors.NewNotFoundError("bookmark missing", "", ""),
			wantCode: oerrors.ExitNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: oerrors.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reportError(tt.err)

			var exitErr *oerrors.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.True(t, exitErr.Printed)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, reportError(nil))
	})

	t.Run("exit error passes through", func(t *testing.T) {
		in := oerrors.NewExitError(errors.New("x"), 3)
		assert.Same(t, in, reportError(in))
	})
}
