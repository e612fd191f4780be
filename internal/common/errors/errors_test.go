// internal/common/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	msgs   []string
	fields []map[string]interface{}
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.msgs = append(l.msgs, msg)
	l.fields = append(l.fields, fields)
}

func TestNormalizeError(t *testing.T) {
	h := NewErrorHandler(&captureLogger{})

	t.Run("standard error passes through unchanged", func(t *testing.T) {
		in := NewUnknownRoleError("wizard")
		out := h.normalizeError(in)
		assert.Same(t, in, out)
	})

	t.Run("plain error becomes internal error", func(t *testing.T) {
		out := h.normalizeError(stderrors.New("boom"))
		assert.Equal(t, ErrorCode("INTERNAL_ERROR"), out.Code)
		assert.Equal(t, "boom", out.Details)
		assert.False(t, out.Retryable)
	})
}

func TestConvertToBPMNError(t *testing.T) {
	t.Run("retryable technical error keeps retries", func(t *testing.T) {
		stdErr := NewProgressWriteFailedError("user-1", stderrors.New("redis down"))
		bpmnErr := ConvertToBPMNError(stdErr)

		assert.Equal(t, "PROGRESS_WRITE_FAILED", bpmnErr.Code)
		assert.Equal(t, 3, bpmnErr.Retries)
		assert.True(t, bpmnErr.Retryable)
		assert.Equal(t, string(stdErr.Code), bpmnErr.ErrorVariables["originalErrorCode"])
	})

	t.Run("business error gets zero retries", func(t *testing.T) {
		bpmnErr := ConvertToBPMNError(NewUnknownRoleError("wizard"))

		assert.Equal(t, "UNKNOWN_ROLE", bpmnErr.Code)
		assert.Equal(t, 0, bpmnErr.Retries)
		assert.False(t, bpmnErr.Retryable)
	})

	t.Run("unmapped code falls back to itself", func(t *testing.T) {
		stdErr := &StandardError{Code: "SOMETHING_ELSE", Message: "odd"}
		bpmnErr := ConvertToBPMNError(stdErr)
		assert.Equal(t, "SOMETHING_ELSE", bpmnErr.Code)
	})
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeNotificationSendFailed))
	assert.Equal(t, 2, GetRetryCount(ErrCodeQueryTimeout))
	assert.Equal(t, 2, GetRetryCount(ErrCodeSearchTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeUnknownRole))
	assert.Equal(t, 0, GetRetryCount(ErrCodeInsufficientInput))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeResourceSearchFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidRequestFormat))
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
	}{
		{ErrCodeUnknownRole, "ANALYSIS"},
		{ErrCodeCatalogLoadFailed, "CATALOG"},
		{ErrCodeQueryExecutionFailed, "DATABASE"},
		{ErrCodeProgressReadFailed, "PROGRESS"},
		{ErrCodeSearchTimeout, "SEARCH"},
		{ErrCodeNotificationSendFailed, "NOTIFICATION"},
		{"SOMETHING_ELSE", "OTHER"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, GetErrorCategory(tt.code), string(tt.code))
	}
}

func TestToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "SEARCH_TIMEOUT",
		Message:   "Search timed out",
		Details:   "index: learning-resources",
		Retryable: true,
		ErrorVariables: map[string]interface{}{
			"index": "learning-resources",
		},
	}

	vars := bpmnErr.ToErrorVariables()
	require.Equal(t, "SEARCH_TIMEOUT", vars["errorCode"])
	assert.Equal(t, "Search timed out", vars["errorMessage"])
	assert.Equal(t, true, vars["retryable"])
	assert.Equal(t, "learning-resources", vars["index"])
}
