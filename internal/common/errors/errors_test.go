package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Code lookup
// ==========================

func TestCodeOf_UnwrapsChain(t *testing.T) {
	base := NewStrategyMissingError()
	wrapped := fmt.Errorf("matches: %w", base)

	assert.Equal(t, ErrCodeStrategyMissing, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeStrategyMissing))
	assert.False(t, HasCode(wrapped, ErrCodeValidationFailed))
	assert.Equal(t, ErrorCode(""), CodeOf(stderrors.New("plain")))
	assert.False(t, HasCode(nil, ErrCodeStrategyMissing))
}

func TestWrappedCauseIsReachable(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewGenerationFailedError("generate", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, err.Retryable)
	assert.Contains(t, err.Message, "generate")
}

func TestNewValidationError_RecordsField(t *testing.T) {
	err := NewValidationError("identity", "email is required")

	assert.Equal(t, ErrCodeValidationFailed, err.Code)
	assert.Equal(t, "identity", err.Metadata["field"])
	assert.False(t, err.Retryable)
}

// ==========================
// Classification
// ==========================

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
		blocking bool
	}{
		{ErrCodeValidationFailed, "VALIDATION", false},
		{ErrCodeUnknownInfluencer, "VALIDATION", false},
		{ErrCodeStrategyMissing, "VALIDATION", false},
		{ErrCodeAccountNotFound, "AUTHENTICATION", true},
		{ErrCodeBadCredential, "AUTHENTICATION", true},
		{ErrCodeAccountAlreadyExists, "AUTHENTICATION", true},
		{ErrCodeNotAuthenticated, "AUTHENTICATION", true},
		{ErrCodePaymentFailed, "PAYMENT", true},
		{ErrCodeGenerationFailed, "GENERATION", false},
		{ErrCodeOperationInProgress, "CONCURRENCY", false},
		{ErrCodeStoreUnavailable, "PERSISTENCE", false},
		{ErrCodeCatalogLoadFailed, "PERSISTENCE", false},
		{"SOMETHING_ELSE", "OTHER", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.category, GetErrorCategory(tt.code))
			assert.Equal(t, tt.blocking, IsBlocking(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedRetries int
	}{
		{
			name:            "retryable store failure",
			err:             NewStoreUnavailableError(stderrors.New("dial tcp: refused")),
			expectedRetries: 3,
		},
		{
			name:            "generation failure retries once",
			err:             NewGenerationFailedError("analyze", context.Canceled),
			expectedRetries: 1,
		},
		{
			name:            "validation is never retried",
			err:             NewValidationError("goalDescription", "goal description is empty"),
			expectedRetries: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)

			assert.Equal(t, string(tt.err.Code), bpmn.Code)
			assert.Equal(t, tt.expectedRetries, bpmn.Retries)

			vars := bpmn.ToErrorVariables()
			assert.Equal(t, string(tt.err.Code), vars["errorCode"])
			assert.Equal(t, GetErrorCategory(tt.err.Code), vars["errorCategory"])
		})
	}
}

func TestNormalize(t *testing.T) {
	std := NewNotAuthenticatedError()
	assert.Same(t, std, Normalize(fmt.Errorf("upgrade: %w", std)))

	plain := stderrors.New("boom")
	normalized := Normalize(plain)
	require.NotNil(t, normalized)
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), normalized.Code)
	assert.ErrorIs(t, normalized, plain)
}
