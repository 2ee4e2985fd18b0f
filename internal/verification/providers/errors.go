// Package providers holds the provider error taxonomy shared by the
// verification provider clients.
package providers

import (
	"errors"
	"fmt"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the provider took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the provider returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or token issues
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage indicates the provider is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorRejected indicates the provider refused the request content
	ErrorRejected ErrorCategory = "rejected"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps provider failures with normalized categorization
type ProviderError struct {
	Category   ErrorCategory
	ProviderID string
	Operation  string
	Message    string
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s %s [%s]: %s: %v", e.ProviderID, e.Operation, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s %s [%s]: %s", e.ProviderID, e.Operation, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a normalized provider error. Retryable marks
// failures a caller may try again later; it never triggers an automatic retry.
func NewProviderError(category ErrorCategory, providerID, operation, message string, underlying error) *ProviderError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &ProviderError{
		Category:   category,
		ProviderID: providerID,
		Operation:  operation,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying later
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// ToDomain wraps a provider failure in the domain error the orchestrators
// propagate. Already coded errors pass through unchanged.
func ToDomain(err error) error {
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	var pe *ProviderError
	if !errors.As(err, &pe) {
		return dErrors.Wrap(err, dErrors.CodeExternalService, "verification provider failed")
	}
	switch pe.Category {
	case ErrorTimeout:
		return dErrors.Wrap(err, dErrors.CodeTimeout, "verification provider timed out")
	case ErrorRejected:
		return dErrors.Wrap(err, dErrors.CodeValidation, pe.Message)
	case ErrorNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, pe.Message)
	default:
		return dErrors.Wrap(err, dErrors.CodeExternalService, "verification provider unavailable")
	}
}
