package handler

import (
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/service"
	"dsa-onboarding/internal/onboarding/workflow"
)

type ApplicationListResponse struct {
	Applications []*models.Application `json:"applications"`
}

// OverviewResponse is an application with its plan and next step.
type OverviewResponse struct {
	Application *models.Application        `json:"application"`
	Plan        []models.StepID            `json:"plan"`
	NextStep    models.StepID              `json:"next_step,omitempty"`
	Partners    *workflow.PartnerReadiness `json:"partners,omitempty"`
}

func FromOverview(o *service.Overview) OverviewResponse {
	return OverviewResponse{
		Application: o.Application,
		Plan:        o.Plan,
		NextStep:    o.NextStep,
		Partners:    o.Partners,
	}
}

type OTPInitiatedResponse struct {
	ReferenceID string `json:"reference_id"`
}

type DirectorPANsResponse struct {
	Results []service.DirectorPANResult `json:"results"`
}
