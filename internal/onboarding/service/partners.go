package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/requestcontext"
)

// PartnerInput is the user-entered part of a partner.
type PartnerInput struct {
	Name   string
	Mobile string
	Email  string
	DOB    string
	PAN    string
}

func (in PartnerInput) normalize() (PartnerInput, error) {
	name, err := required(in.Name, "partner name")
	if err != nil {
		return PartnerInput{}, err
	}
	in.Name = name
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Email = strings.TrimSpace(in.Email)
	in.DOB = strings.TrimSpace(in.DOB)
	if in.PAN != "" {
		if in.PAN, err = normalizePAN(in.PAN); err != nil {
			return PartnerInput{}, err
		}
	}
	return in, nil
}

func partnerSubject(pid id.PartnerID) subjectResolver {
	return func(app *models.Application) (kycSubject, error) {
		if err := workflow.EnsureEnterable(app, models.StepPartners); err != nil {
			return kycSubject{}, err
		}
		p, ok := app.Partner(pid)
		if !ok {
			return kycSubject{}, dErrors.New(dErrors.CodeNotFound, "partner not found")
		}
		return kycSubject{
			key:    fmt.Sprintf("partner:%s:%s", app.ID, pid),
			record: &p.KYC,
			person: &p.Person,
			done:   p.KYCCompleted,
		}, nil
	}
}

// AddPartner appends a partner with a fresh id.
func (s *Service) AddPartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, in PartnerInput) (*models.Partner, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	var added models.Partner
	_, err = s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepPartners); err != nil {
			return err
		}
		if len(app.Partners) >= s.limits.MaxPartners {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d partners are allowed", s.limits.MaxPartners))
		}
		added = models.Partner{
			ID: id.NewPartnerID(),
			Person: models.Person{
				Position:  len(app.Partners) + 1,
				Name:      in.Name,
				Mobile:    in.Mobile,
				Email:     in.Email,
				DOB:       in.DOB,
				PANNumber: in.PAN,
			},
		}
		app.Partners = append(app.Partners, added)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// UpdatePartner edits a partner's details. Identity fields are frozen once
// Aadhaar is verified; contact fields stay editable.
func (s *Service) UpdatePartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, in PartnerInput) (*models.Partner, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	var updated models.Partner
	_, err = s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepPartners); err != nil {
			return err
		}
		p, ok := app.Partner(pid)
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "partner not found")
		}
		identityChanged := in.Name != p.Name || in.DOB != p.DOB || (in.PAN != "" && in.PAN != p.PANNumber)
		if identityChanged && p.KYCState() != models.KYCUnverified {
			return dErrors.New(dErrors.CodeInvalidState, "partner identity cannot change after Aadhaar verification")
		}
		p.Name, p.DOB, p.Mobile, p.Email = in.Name, in.DOB, in.Mobile, in.Email
		if in.PAN != "" {
			p.PANNumber = in.PAN
		}
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemovePartner deletes a partner by id.
func (s *Service) RemovePartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID) (*models.Application, error) {
	return s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepPartners); err != nil {
			return err
		}
		if !app.RemovePartner(pid) {
			return dErrors.New(dErrors.CodeNotFound, "partner not found")
		}
		return nil
	})
}

// InitiatePartnerAadhaar starts phase one of a partner's KYC.
func (s *Service) InitiatePartnerAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, aadhaarNumber string) (string, error) {
	return s.initiateAadhaar(ctx, appID, owner, aadhaarNumber, partnerSubject(pid))
}

func (s *Service) VerifyPartnerAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, cmd AadhaarOTPCommand) (*models.Application, error) {
	return s.verifyAadhaar(ctx, appID, owner, cmd, partnerSubject(pid))
}

// VerifyPartnerPAN is phase two of a partner's KYC, after Aadhaar. It uses
// the strict table: a name mismatch blocks, other concerns are notes, and
// passing completes the partner's KYC.
func (s *Service) VerifyPartnerPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, pan string) (*models.Application, error) {
	return s.verifyPAN(ctx, appID, owner, pan, partnerSubject(pid), func(*models.Application) panTable {
		return panTable{check: models.ContextPartnerPAN, run: decision.PartnerStrictPAN}
	})
}

// CheckPartnerPAN verifies a partner's PAN against the entered name and date
// of birth, before Aadhaar. The record is kept but KYC stays incomplete.
func (s *Service) CheckPartnerPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, pan string) (*models.CrossValidationRecord, error) {
	pan, err := normalizePAN(pan)
	if err != nil {
		return nil, err
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	subject, err := partnerSubject(pid)(app)
	if err != nil {
		return nil, err
	}
	if subject.done {
		return nil, dErrors.New(dErrors.CodeAlreadyCompleted, "KYC is already completed")
	}
	if subject.person.DOB == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "partner date of birth is required for a PAN check")
	}

	var facts decision.PANFacts
	err = s.callProvider(ctx, "verify_pan", func(ctx context.Context) error {
		var callErr error
		facts, callErr = s.ids.VerifyPAN(ctx, ports.PANRequest{PAN: pan, Name: subject.person.Name, DOB: subject.person.DOB})
		return callErr
	})
	if err != nil {
		return nil, err
	}
	out, err := s.decide(ctx, app, models.ContextPartnerPAN, func() (decision.Outcome, error) {
		return decision.PartnerDirectorPAN(facts)
	})
	if err != nil {
		return nil, err
	}
	s.auditDecision(ctx, app, owner, subject.key, models.ContextPartnerPAN, out)
	if out.Decision.Blocks() {
		return nil, workflow.BlockedError(out)
	}

	now := requestcontext.Now(ctx)
	record := models.NewCrossValidationRecord(models.ContextPartnerPAN, *facts.NameMatch, facts.DobMatch, out, now)
	subject.person.PANNumber = pan
	subject.record.CrossValidation = record
	app.UpdatedAt = now
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	return record, nil
}

// CompletePartners closes the partners step once the count is within limits
// and every partner has completed KYC.
func (s *Service) CompletePartners(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error) {
	return s.completeGate(ctx, appID, owner, models.StepPartners, func(app *models.Application) (decision.Outcome, error) {
		return workflow.PartnersOutcome(app, s.limits)
	})
}

// completeGate closes a step whose outcome is a pure gate over the
// application.
func (s *Service) completeGate(ctx context.Context, appID id.ApplicationID, owner id.UserID, step models.StepID, gate func(app *models.Application) (decision.Outcome, error)) (*models.Application, error) {
	app, err := s.mutate(ctx, appID, owner, func(app *models.Application, now time.Time) error {
		if err := workflow.EnsureEnterable(app, step); err != nil {
			return err
		}
		out, err := gate(app)
		if err != nil {
			return err
		}
		return s.complete(ctx, app, step, out, now)
	})
	if err != nil {
		return nil, err
	}
	s.afterStep(ctx, app, owner, step)
	return app, nil
}
