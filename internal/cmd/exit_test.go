package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/djbake/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"validation sentinel", fmt.Errorf("bad name: %w", oerrors.ErrValidation), ExitValidationError},
		{"assertion sentinel", fmt.Errorf("wrong content: %w", oerrors.ErrAssertion), ExitValidationError},
		{"tool sentinel", fmt.Errorf("pylint: %w", oerrors.ErrToolFailed), ExitToolFailure},
		{"not found sentinel", fmt.Errorf("no file: %w", oerrors.ErrNotFound), ExitNotFound},
		{"exit error wins", oerrors.NewExitError(fmt.Errorf("x: %w", oerrors.ErrNotFound), ExitToolFailure), ExitToolFailure},
		{"detail error carries cause", oerrors.NewValidationError("bad app name", "", ""), ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Tool Failure", ExitCodeName(ExitToolFailure))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
