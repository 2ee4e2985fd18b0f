package providers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

func TestProviderErrorRetryable(t *testing.T) {
	assert.True(t, NewProviderError(ErrorTimeout, "kycapi", "pan", "slow", nil).Retryable)
	assert.True(t, NewProviderError(ErrorProviderOutage, "kycapi", "pan", "503", nil).Retryable)
	assert.False(t, NewProviderError(ErrorRejected, "kycapi", "pan", "bad pan", nil).Retryable)
	assert.False(t, NewProviderError(ErrorAuthentication, "kycapi", "pan", "401", nil).Retryable)
}

func TestToDomain(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		code     dErrors.Code
	}{
		{ErrorTimeout, dErrors.CodeTimeout},
		{ErrorProviderOutage, dErrors.CodeExternalService},
		{ErrorAuthentication, dErrors.CodeExternalService},
		{ErrorRejected, dErrors.CodeValidation},
		{ErrorNotFound, dErrors.CodeNotFound},
		{ErrorBadData, dErrors.CodeExternalService},
	}
	for _, tt := range tests {
		err := ToDomain(NewProviderError(tt.category, "kycapi", "pan", "msg", nil))
		assert.True(t, dErrors.Is(err, tt.code), string(tt.category))
		assert.Equal(t, tt.category, GetCategory(err))
	}

	assert.Nil(t, ToDomain(nil))

	coded := dErrors.New(dErrors.CodeValidation, "already coded")
	assert.Same(t, coded, ToDomain(coded))

	assert.True(t, dErrors.Is(ToDomain(errors.New("raw")), dErrors.CodeExternalService))
}
