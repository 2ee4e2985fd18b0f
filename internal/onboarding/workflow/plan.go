// Package workflow is the step-gated state machine for onboarding
// applications.
//
// Every function here is pure over the application value it is given; the
// service persists the result. Status is only ever recomputed by
// DeriveStatus, called explicitly after each transition.
package workflow

import (
	"dsa-onboarding/internal/onboarding/models"
	id "dsa-onboarding/pkg/domain"
)

var (
	individualPlan     = []models.StepID{models.StepKYC, models.StepBank, models.StepReferences, models.StepAgreement}
	proprietorshipPlan = []models.StepID{models.StepKYC, models.StepBank, models.StepReferences, models.StepDocuments, models.StepAgreement}
	partnershipPlan    = []models.StepID{models.StepPartners, models.StepBank, models.StepDocuments, models.StepReferences, models.StepAgreement}
	companyPlan        = []models.StepID{models.StepCompanyVerification, models.StepDirectors, models.StepBank, models.StepDocuments, models.StepAgreement}
)

// StepsFor returns a fresh copy of the ordered plan for an entity type.
func StepsFor(t id.EntityType) ([]models.StepID, error) {
	e, err := models.EntityOf(t, "")
	if err != nil {
		return nil, err
	}
	return PlanFor(e), nil
}

// PlanFor returns a fresh copy of the ordered plan for an entity variant.
func PlanFor(e models.Entity) []models.StepID {
	var plan []models.StepID
	switch e.(type) {
	case models.Individual:
		plan = individualPlan
	case models.Proprietorship:
		plan = proprietorshipPlan
	case models.Partnership:
		plan = partnershipPlan
	case models.Company:
		plan = companyPlan
	}
	out := make([]models.StepID, len(plan))
	copy(out, plan)
	return out
}

// RequiredDocuments lists the document types the documents step needs.
func RequiredDocuments(e models.Entity) []models.DocumentType {
	switch e.(type) {
	case models.Proprietorship:
		return []models.DocumentType{models.DocBusinessProof}
	case models.Partnership:
		return []models.DocumentType{models.DocPartnershipDeed, models.DocFirmPAN}
	case models.Company:
		return []models.DocumentType{models.DocCertificateOfIncorporation, models.DocBoardResolution}
	case models.Individual:
		return nil
	default:
		return nil
	}
}

func inPlan(plan []models.StepID, step models.StepID) (int, bool) {
	for i, s := range plan {
		if s == step {
			return i, true
		}
	}
	return -1, false
}
