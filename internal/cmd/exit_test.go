package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/pybake/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "validation error", err: oerrors.ErrValidation, wantCode: ExitValidationError},
		{name: "wrapped validation error", err: oerrors.Wrap(oerrors.ErrValidation, "bad option"), wantCode: ExitValidationError},
		{name: "permission error", err: oerrors.ErrPermission, wantCode: ExitPermissionDenied},
		{name: "not found error", err: oerrors.ErrNotFound, wantCode: ExitNotFound},
		{
			name:     "cleanup of a missing file",
			err:      &oerrors.DetailError{Type: "cleanup failed", Cause: fmt.Errorf("%w: %w", oerrors.ErrNotFound, fs.ErrNotExist)},
			wantCode: ExitNotFound,
		},
		{name: "explicit exit error", err: &oerrors.ExitError{Code: 3, Err: errors.New("x")}, wantCode: 3},
		{name: "generic error", err: errors.New("boom"), wantCode: ExitGeneralError},
		{name: "canceled", err: context.Canceled, wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Permission Denied", ExitCodeName(ExitPermissionDenied))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}

func TestWithExitCode(t *testing.T) {
	assert.NoError(t, withExitCode(nil))

	err := withExitCode(oerrors.NewNotFoundError("missing", "", ""))
	var exitErr *oerrors.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitNotFound, exitErr.Code)

	explicit := &oerrors.ExitError{Code: 7}
	assert.Same(t, explicit, withExitCode(explicit))
}
