// Package errors provides the standardized error taxonomy shared by the
// session layer, the persistence port and the zeebe workers.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Input validation
const (
	ErrCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnknownInfluencer ErrorCode = "UNKNOWN_INFLUENCER"
	ErrCodeStrategyMissing   ErrorCode = "STRATEGY_MISSING"
)

// Authentication
const (
	ErrCodeAccountNotFound      ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeBadCredential        ErrorCode = "BAD_CREDENTIAL"
	ErrCodeAccountAlreadyExists ErrorCode = "ACCOUNT_ALREADY_EXISTS"
	ErrCodeNotAuthenticated     ErrorCode = "NOT_AUTHENTICATED"
)

// Payment, generation, persistence
const (
	ErrCodePaymentFailed       ErrorCode = "PAYMENT_FAILED"
	ErrCodeGenerationFailed    ErrorCode = "GENERATION_FAILED"
	ErrCodeOperationInProgress ErrorCode = "OPERATION_IN_PROGRESS"
	ErrCodeStoreUnavailable    ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeCatalogLoadFailed   ErrorCode = "CATALOG_LOAD_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// CodeOf returns the code of the first StandardError in err's chain, or ""
// when there is none.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError rejects input before any external call is made.
func NewValidationError(field, details string) *StandardError {
	e := newError(ErrCodeValidationFailed, "Input validation failed", details, false)
	e.Metadata = map[string]interface{}{"field": field}
	return e
}

func NewUnknownInfluencerError(id string) *StandardError {
	return newError(ErrCodeUnknownInfluencer, "Influencer not found in catalog", fmt.Sprintf("id: %s", id), false)
}

func NewStrategyMissingError() *StandardError {
	return newError(ErrCodeStrategyMissing, "No strategy has been generated yet", "", false)
}

func NewAccountNotFoundError(identity string) *StandardError {
	return newError(ErrCodeAccountNotFound, "Account not found. Please sign up.", fmt.Sprintf("identity: %s", identity), false)
}

func NewBadCredentialError() *StandardError {
	return newError(ErrCodeBadCredential, "Incorrect password.", "", false)
}

func NewAccountAlreadyExistsError(identity string) *StandardError {
	return newError(ErrCodeAccountAlreadyExists, "Account already exists. Please log in.", fmt.Sprintf("identity: %s", identity), false)
}

func NewNotAuthenticatedError() *StandardError {
	return newError(ErrCodeNotAuthenticated, "No user is logged in", "", false)
}

// NewPaymentFailedError wraps the cause of a failed upgrade.
func NewPaymentFailedError(err error) *StandardError {
	e := newError(ErrCodePaymentFailed, "Payment failed. Please try again.", err.Error(), true)
	e.cause = err
	return e
}

// NewGenerationFailedError is the generic notice surfaced when the generator
// boundary itself fails.
func NewGenerationFailedError(operation string, err error) *StandardError {
	e := newError(ErrCodeGenerationFailed, fmt.Sprintf("Could not %s strategy. Please try again.", operation), err.Error(), true)
	e.cause = err
	return e
}

func NewOperationInProgressError(operation string) *StandardError {
	return newError(ErrCodeOperationInProgress, "Another strategy operation is already running", fmt.Sprintf("operation: %s", operation), false)
}

func NewStoreUnavailableError(err error) *StandardError {
	e := newError(ErrCodeStoreUnavailable, "Persistence store unavailable", err.Error(), true)
	e.cause = err
	return e
}

func NewCatalogLoadFailedError(err error) *StandardError {
	e := newError(ErrCodeCatalogLoadFailed, "Influencer catalog could not be loaded", err.Error(), true)
	e.cause = err
	return e
}

// ==========================
// 4. Classification
// ==========================

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeStoreUnavailable, ErrCodeCatalogLoadFailed:
		return 3
	case ErrCodeGenerationFailed, ErrCodePaymentFailed:
		return 1
	default:
		return 0
	}
}

// ConvertToBPMNError maps a StandardError onto a workflow error.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"errorCategory":     GetErrorCategory(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory groups a code into the taxonomy used for logging and for
// deciding whether a failure blocks the user.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case code == ErrCodeOperationInProgress:
		return "CONCURRENCY"
	case strings.HasPrefix(codeStr, "ACCOUNT") || strings.Contains(codeStr, "CREDENTIAL") || strings.Contains(codeStr, "AUTHENTICATED"):
		return "AUTHENTICATION"
	case strings.Contains(codeStr, "PAYMENT"):
		return "PAYMENT"
	case strings.Contains(codeStr, "GENERATION"):
		return "GENERATION"
	case strings.Contains(codeStr, "STORE") || strings.Contains(codeStr, "CATALOG"):
		return "PERSISTENCE"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "UNKNOWN") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}

// IsBlocking reports whether the user must redecide something before
// continuing. Only authentication and payment failures block.
func IsBlocking(code ErrorCode) bool {
	switch GetErrorCategory(code) {
	case "AUTHENTICATION", "PAYMENT":
		return true
	}
	return false
}
