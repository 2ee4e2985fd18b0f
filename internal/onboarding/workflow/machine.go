package workflow

import (
	"fmt"
	"strings"
	"time"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/verification/decision"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
)

func plan(app *models.Application) ([]models.StepID, error) {
	return StepsFor(app.EntityType)
}

// NextStep returns the first incomplete step of the plan, or false when
// every step is complete.
func NextStep(app *models.Application) (models.StepID, bool) {
	steps, err := plan(app)
	if err != nil {
		return "", false
	}
	for _, s := range steps {
		if !app.CompletedSteps[s] {
			return s, true
		}
	}
	return "", false
}

// CanEnter is the strict linear gate: a step is enterable when it is in the
// plan and every step before it is complete.
func CanEnter(app *models.Application, step models.StepID) bool {
	steps, err := plan(app)
	if err != nil {
		return false
	}
	idx, ok := inPlan(steps, step)
	if !ok {
		return false
	}
	for _, prior := range steps[:idx] {
		if !app.CompletedSteps[prior] {
			return false
		}
	}
	return true
}

// DeriveStatus recomputes status. Terminal statuses are kept as they are.
func DeriveStatus(app *models.Application) models.Status {
	if app.Status.IsTerminal() {
		return app.Status
	}
	next, ok := NextStep(app)
	if !ok {
		return models.StatusCompleted
	}
	return models.StatusAt(next)
}

// EnsureOpen fails when the application is in a terminal state.
func EnsureOpen(app *models.Application) error {
	if app.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvalidState, fmt.Sprintf("application is %s", app.Status))
	}
	return nil
}

// EnsureEnterable combines EnsureOpen with the plan and gate checks.
func EnsureEnterable(app *models.Application, step models.StepID) error {
	if err := EnsureOpen(app); err != nil {
		return err
	}
	steps, err := plan(app)
	if err != nil {
		return err
	}
	if _, ok := inPlan(steps, step); !ok {
		return notInPlan(app, step)
	}
	if !CanEnter(app, step) {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("step %s not yet enterable", step))
	}
	return nil
}

// EnsureEditable allows changes to the data a step collects: the step must
// be in the plan and not yet complete. It does not require the step to be
// enterable, so forms can be filled ahead of the gate.
func EnsureEditable(app *models.Application, step models.StepID) error {
	if err := EnsureOpen(app); err != nil {
		return err
	}
	steps, err := plan(app)
	if err != nil {
		return err
	}
	if _, ok := inPlan(steps, step); !ok {
		return notInPlan(app, step)
	}
	if app.CompletedSteps[step] {
		return dErrors.New(dErrors.CodeAlreadyCompleted, fmt.Sprintf("step %s is already complete", step))
	}
	return nil
}

func notInPlan(app *models.Application, step models.StepID) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("step %s is not part of the %s plan", step, app.EntityType))
}

// BlockedError is the error a block outcome turns into.
func BlockedError(out decision.Outcome) error {
	msg := "verification blocked"
	if len(out.Warnings) > 0 {
		msg = strings.Join(out.Warnings, "; ")
	}
	return dErrors.New(dErrors.CodeBlockedTransition, msg)
}

// MarkComplete records a step outcome. A block leaves the flag untouched and
// returns CodeBlockedTransition carrying the outcome's warnings. Re-marking a
// completed step only recomputes status.
func MarkComplete(app *models.Application, step models.StepID, out decision.Outcome, now time.Time) error {
	if err := EnsureEnterable(app, step); err != nil {
		return err
	}
	if out.Decision.Blocks() {
		return BlockedError(out)
	}
	if app.CompletedSteps == nil {
		app.CompletedSteps = map[models.StepID]bool{}
	}
	app.CompletedSteps[step] = true
	app.Status = DeriveStatus(app)
	if app.Status == models.StatusCompleted && app.CompletedAt == nil {
		t := now
		app.CompletedAt = &t
	}
	app.UpdatedAt = now
	return nil
}

// ChangeEntityType switches the legal form while nothing is complete yet.
// A company needs a valid sub-type; other types drop any sub-type.
func ChangeEntityType(app *models.Application, t id.EntityType, sub id.CompanySubType, now time.Time) error {
	if err := EnsureOpen(app); err != nil {
		return err
	}
	if app.HasProgress() {
		return dErrors.New(dErrors.CodeImmutableAfterProgress, "entity type cannot change after a step is complete")
	}
	e, err := models.EntityOf(t, sub)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "unknown entity type "+string(t))
	}
	switch c := e.(type) {
	case models.Company:
		canonical, err := id.ParseCompanySubType(string(c.SubType))
		if err != nil {
			return err
		}
		app.CompanySubType = canonical
	case models.Individual, models.Proprietorship, models.Partnership:
		app.CompanySubType = ""
	}
	app.EntityType = t
	app.CompletedSteps = map[models.StepID]bool{}
	app.Status = DeriveStatus(app)
	app.UpdatedAt = now
	return nil
}

// Reject is the admin-only terminal transition.
func Reject(app *models.Application, reason string, now time.Time) error {
	if err := EnsureOpen(app); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return dErrors.New(dErrors.CodeValidation, "rejection reason is required")
	}
	t := now
	app.Status = models.StatusRejected
	app.RejectionReason = reason
	app.RejectedAt = &t
	app.UpdatedAt = now
	return nil
}
