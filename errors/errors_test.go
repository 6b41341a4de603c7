package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorIncludesCodeAndCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := ErrAISummaryFailed(cause)

	assert.Equal(t, "[AI_SUMMARY_FAILED] Failed to generate summary: dial tcp: timeout", err.Error())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode)
	assert.True(t, stdErrors.Is(err, cause))
}

func TestAppError_WithDetailDoesNotAlias(t *testing.T) {
	base := ErrInvalidArgument("bad")
	a := base.WithDetail("field", "a")
	b := a.WithDetail("other", "b")

	assert.Len(t, a.Details, 1)
	assert.Len(t, b.Details, 2)
	assert.Nil(t, base.Details)
}

func TestErrValidationFailed_CopiesDetails(t *testing.T) {
	err := ErrValidationFailed("invalid notes", map[string]string{
		"task-1": "This task is already assigned to this person",
		"task-2": "Task name is required",
	})

	require.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode)
	assert.Equal(t, ErrorCode_VALIDATION_FAILED, err.Code)
	assert.Equal(t, "Task name is required", err.Details["task-2"])
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "DUPLICATE_TASK", ErrorCode_DUPLICATE_TASK.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())

	text, err := ErrorCode_MISSING_ASSIGNEE.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "MISSING_ASSIGNEE", string(text))
}

func TestAppError_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrMissingFile())

	var appErr AppError
	require.True(t, stdErrors.As(wrapped, &appErr))
	assert.Equal(t, ErrorCode_MISSING_FILE, appErr.Code)
}
