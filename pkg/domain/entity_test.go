package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

func TestParseEntityType(t *testing.T) {
	for _, in := range []string{"individual", " Proprietorship ", "PARTNERSHIP", "company"} {
		_, err := ParseEntityType(in)
		require.NoError(t, err, in)
	}

	_, err := ParseEntityType("trust")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))

	_, err = ParseEntityType("")
	require.Error(t, err)
}

func TestParseCompanySubType(t *testing.T) {
	st, err := ParseCompanySubType("LLP")
	require.NoError(t, err)
	assert.Equal(t, SubTypeLLP, st)

	_, err = ParseCompanySubType("")
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
}
