package workflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/verification/decision"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/testutil"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newApp(t *testing.T, e models.Entity) *models.Application {
	t.Helper()
	app := models.NewApplication(id.NewApplicationID(), id.UserID(uuid.New()), e, "Acme Traders", now)
	app.Status = DeriveStatus(app)
	return app
}

func approveOutcome() decision.Outcome {
	return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}
}

func TestStepsFor(t *testing.T) {
	partnership, err := StepsFor(id.EntityPartnership)
	require.NoError(t, err)
	assert.Len(t, partnership, 5)
	assert.Equal(t, models.StepPartners, partnership[0])

	individual, err := StepsFor(id.EntityIndividual)
	require.NoError(t, err)
	assert.Equal(t, []models.StepID{models.StepKYC, models.StepBank, models.StepReferences, models.StepAgreement}, individual)

	company, err := StepsFor(id.EntityCompany)
	require.NoError(t, err)
	assert.Equal(t, models.StepCompanyVerification, company[0])

	t.Run("returns a copy", func(t *testing.T) {
		individual[0] = models.StepAgreement
		again, err := StepsFor(id.EntityIndividual)
		require.NoError(t, err)
		assert.Equal(t, models.StepKYC, again[0])
	})

	t.Run("unknown entity is a config error", func(t *testing.T) {
		_, err := StepsFor("trust")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeInternal))
	})
}

func TestNextStepAndCanEnter(t *testing.T) {
	app := newApp(t, models.Individual{})
	app.CompletedSteps = map[models.StepID]bool{
		models.StepKYC:        true,
		models.StepBank:       false,
		models.StepReferences: false,
		models.StepAgreement:  false,
	}

	next, ok := NextStep(app)
	require.True(t, ok)
	assert.Equal(t, models.StepBank, next)

	assert.True(t, CanEnter(app, models.StepKYC))
	assert.True(t, CanEnter(app, models.StepBank))
	assert.False(t, CanEnter(app, models.StepReferences))
	assert.False(t, CanEnter(app, models.StepDocuments), "documents is not in the individual plan")

	t.Run("first step is always enterable", func(t *testing.T) {
		fresh := newApp(t, models.Partnership{})
		assert.True(t, CanEnter(fresh, models.StepPartners))
		assert.False(t, CanEnter(fresh, models.StepBank))
	})
}

func TestMarkComplete(t *testing.T) {
	testutil.Given(t, "an individual application with kyc complete", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, MarkComplete(app, models.StepKYC, approveOutcome(), now))
		require.Equal(t, models.StatusAt(models.StepBank), app.Status)

		testutil.When(t, "bank is marked with a block outcome", func(t *testing.T) {
			err := MarkComplete(app, models.StepBank, decision.Outcome{
				Decision: decision.Block,
				Warnings: []string{"bank account holder name does not match KYC name"},
			}, now)

			testutil.Then(t, "a blocked transition is returned and the flag is unchanged", func(t *testing.T) {
				require.Error(t, err)
				assert.True(t, dErrors.Is(err, dErrors.CodeBlockedTransition))
				assert.Contains(t, err.Error(), "does not match KYC name")
				assert.False(t, app.CompletedSteps[models.StepBank])
				assert.Equal(t, models.StatusAt(models.StepBank), app.Status)
			})
		})

		testutil.When(t, "bank is marked with a flag outcome", func(t *testing.T) {
			err := MarkComplete(app, models.StepBank, decision.Outcome{
				Decision: decision.Flag,
				Warnings: []string{"name match below auto-approval threshold"},
			}, now)

			testutil.Then(t, "the step completes", func(t *testing.T) {
				require.NoError(t, err)
				assert.True(t, app.CompletedSteps[models.StepBank])
				assert.Equal(t, models.StatusAt(models.StepReferences), app.Status)
			})
		})
	})

	t.Run("skipping ahead is rejected", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		err := MarkComplete(app, models.StepReferences, approveOutcome(), now)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
		assert.Contains(t, err.Error(), "not yet enterable")
	})

	t.Run("steps outside the plan are rejected", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		err := MarkComplete(app, models.StepDirectors, approveOutcome(), now)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("re-marking recomputes stale status", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, MarkComplete(app, models.StepKYC, approveOutcome(), now))
		app.Status = models.StatusAt(models.StepKYC)

		require.NoError(t, MarkComplete(app, models.StepKYC, approveOutcome(), now))
		assert.Equal(t, models.StatusAt(models.StepBank), app.Status)
	})

	t.Run("exhausting the plan completes the application", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		for _, s := range []models.StepID{models.StepKYC, models.StepBank, models.StepReferences, models.StepAgreement} {
			require.NoError(t, MarkComplete(app, s, approveOutcome(), now))
		}
		assert.Equal(t, models.StatusCompleted, app.Status)
		require.NotNil(t, app.CompletedAt)

		err := MarkComplete(app, models.StepAgreement, approveOutcome(), now)
		assert.True(t, dErrors.Is(err, dErrors.CodeInvalidState))
	})
}

func TestChangeEntityType(t *testing.T) {
	t.Run("allowed before progress", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, ChangeEntityType(app, id.EntityCompany, id.SubTypeLLP, now))
		assert.Equal(t, id.EntityCompany, app.EntityType)
		assert.Equal(t, id.SubTypeLLP, app.CompanySubType)
		assert.Equal(t, models.StatusAt(models.StepCompanyVerification), app.Status)
	})

	t.Run("stores the canonical sub-type", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, ChangeEntityType(app, id.EntityCompany, "LLP", now))
		assert.Equal(t, id.SubTypeLLP, app.CompanySubType)
	})

	t.Run("drops the sub-type for non-company types", func(t *testing.T) {
		app := newApp(t, models.Company{SubType: id.SubTypeOPC})
		require.NoError(t, ChangeEntityType(app, id.EntityPartnership, id.SubTypeOPC, now))
		assert.Empty(t, app.CompanySubType)
		assert.Equal(t, models.StatusAt(models.StepPartners), app.Status)
	})

	t.Run("company requires a sub-type", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		err := ChangeEntityType(app, id.EntityCompany, "", now)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
		assert.Equal(t, id.EntityIndividual, app.EntityType)
	})

	t.Run("immutable after progress", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, MarkComplete(app, models.StepKYC, approveOutcome(), now))
		err := ChangeEntityType(app, id.EntityProprietorship, "", now)
		assert.True(t, dErrors.Is(err, dErrors.CodeImmutableAfterProgress))
	})
}

func TestReject(t *testing.T) {
	app := newApp(t, models.Individual{})
	require.Error(t, Reject(app, "  ", now))

	require.NoError(t, Reject(app, "fraud suspected", now))
	assert.Equal(t, models.StatusRejected, app.Status)
	assert.Equal(t, models.StatusRejected, DeriveStatus(app))

	for name, err := range map[string]error{
		"reject":      Reject(app, "again", now),
		"mark":        MarkComplete(app, models.StepKYC, approveOutcome(), now),
		"change type": ChangeEntityType(app, id.EntityProprietorship, "", now),
	} {
		assert.True(t, dErrors.Is(err, dErrors.CodeInvalidState), name)
	}
}

func TestEnsureEditable(t *testing.T) {
	t.Run("allows data entry ahead of the gate", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, EnsureEditable(app, models.StepReferences))
		assert.False(t, CanEnter(app, models.StepReferences))
	})

	t.Run("completed step is read-only", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		require.NoError(t, MarkComplete(app, models.StepKYC, approveOutcome(), now))
		err := EnsureEditable(app, models.StepKYC)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAlreadyCompleted))
	})

	t.Run("step outside the plan is a validation error", func(t *testing.T) {
		app := newApp(t, models.Individual{})
		err := EnsureEditable(app, models.StepPartners)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
