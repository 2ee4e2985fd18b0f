package workflow

import (
	"fmt"
	"strings"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/verification/decision"
	dErrors "dsa-onboarding/pkg/domain-errors"
)

// Limits are the configurable counts the completion gates enforce.
type Limits struct {
	MinReferences int
	MinPartners   int
	MaxPartners   int
}

// DefaultLimits are the contract defaults.
func DefaultLimits() Limits {
	return Limits{MinReferences: 2, MinPartners: 2, MaxPartners: 10}
}

// PartnerReadiness summarizes whether the partners step can complete.
type PartnerReadiness struct {
	Count           int  `json:"count"`
	KYCPendingCount int  `json:"kyc_pending_count"`
	Ready           bool `json:"ready"`
}

// Partners evaluates the partners gate.
func Partners(app *models.Application, l Limits) PartnerReadiness {
	r := PartnerReadiness{Count: len(app.Partners)}
	for i := range app.Partners {
		if !app.Partners[i].KYCCompleted {
			r.KYCPendingCount++
		}
	}
	r.Ready = r.Count >= l.MinPartners && r.Count <= l.MaxPartners && r.KYCPendingCount == 0
	return r
}

// PartnersOutcome turns the partners gate into a step outcome.
func PartnersOutcome(app *models.Application, l Limits) (decision.Outcome, error) {
	r := Partners(app, l)
	switch {
	case r.Count < l.MinPartners:
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at least %d partners are required, have %d", l.MinPartners, r.Count))
	case r.Count > l.MaxPartners:
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d partners are allowed, have %d", l.MaxPartners, r.Count))
	case r.KYCPendingCount > 0:
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%d partner(s) have not completed KYC", r.KYCPendingCount))
	}
	return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}, nil
}

// DirectorsOutcome requires at least one director, each with KYC complete.
func DirectorsOutcome(app *models.Application) (decision.Outcome, error) {
	if app.Company == nil || len(app.Company.Directors) == 0 {
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, "at least one director is required")
	}
	pending := 0
	for i := range app.Company.Directors {
		if !app.Company.Directors[i].KYCCompleted {
			pending++
		}
	}
	if pending > 0 {
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%d director(s) have not completed KYC", pending))
	}
	return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}, nil
}

// ReferencesOutcome requires the minimum number of references.
func ReferencesOutcome(app *models.Application, l Limits) (decision.Outcome, error) {
	if len(app.References) < l.MinReferences {
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at least %d references are required, have %d", l.MinReferences, len(app.References)))
	}
	return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}, nil
}

// DocumentsOutcome requires every document type the entity needs.
func DocumentsOutcome(app *models.Application) (decision.Outcome, error) {
	e, err := app.Entity()
	if err != nil {
		return decision.Outcome{}, err
	}
	have := app.DocumentTypes()
	var missing []string
	for _, t := range RequiredDocuments(e) {
		if !have[t] {
			missing = append(missing, string(t))
		}
	}
	if len(missing) > 0 {
		return decision.Outcome{}, dErrors.New(dErrors.CodeValidation, "missing required documents: "+strings.Join(missing, ", "))
	}
	return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}, nil
}
