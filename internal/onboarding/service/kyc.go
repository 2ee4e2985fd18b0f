package service

import (
	"context"
	"time"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/requestcontext"
)

// AadhaarOTPCommand completes an Aadhaar OTP verification. The Aadhaar
// number is sent again so the reference can be checked against it.
type AadhaarOTPCommand struct {
	ReferenceID   string
	OTP           string
	AadhaarNumber string
}

// kycSubject is the natural person being verified. person is nil for the
// primary applicant, whose completion is the kyc step itself.
type kycSubject struct {
	key    string
	record *models.KYCRecord
	person *models.Person
	done   bool
}

type subjectResolver func(app *models.Application) (kycSubject, error)

// panTable is one of the PAN cross-validation tables with the context its
// record is filed under.
type panTable struct {
	check models.CheckContext
	run   func(decision.PANFacts) (decision.Outcome, error)
}

func applicantSubject(app *models.Application) (kycSubject, error) {
	if err := workflow.EnsureEnterable(app, models.StepKYC); err != nil {
		return kycSubject{}, err
	}
	return kycSubject{
		key:    "applicant:" + app.ID.String(),
		record: &app.KYC,
		done:   app.CompletedSteps[models.StepKYC],
	}, nil
}

func (s *Service) initiateAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, aadhaarNumber string, resolve subjectResolver) (string, error) {
	aadhaarNumber, err := normalizeAadhaar(aadhaarNumber)
	if err != nil {
		return "", err
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return "", err
	}
	subject, err := resolve(app)
	if err != nil {
		return "", err
	}
	if subject.done {
		return "", dErrors.New(dErrors.CodeAlreadyCompleted, "KYC is already completed")
	}

	var refID string
	err = s.callProvider(ctx, "aadhaar_otp", func(ctx context.Context) error {
		var callErr error
		refID, callErr = s.ids.GenerateAadhaarOTP(ctx, aadhaarNumber)
		return callErr
	})
	if err != nil {
		return "", err
	}
	if err := s.otp.Issue(ctx, refID, subject.key, aadhaarNumber, requestcontext.Now(ctx)); err != nil {
		return "", err
	}
	s.logAudit(ctx, string(audit.EventAadhaarOTPIssued),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"subject", subject.key,
	)
	return refID, nil
}

func (s *Service) verifyAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd AadhaarOTPCommand, resolve subjectResolver) (*models.Application, error) {
	aadhaarNumber, err := normalizeAadhaar(cmd.AadhaarNumber)
	if err != nil {
		return nil, err
	}
	code, err := normalizeOTP(cmd.OTP)
	if err != nil {
		return nil, err
	}
	refID, err := required(cmd.ReferenceID, "reference id")
	if err != nil {
		return nil, err
	}

	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	subject, err := resolve(app)
	if err != nil {
		return nil, err
	}
	if subject.done {
		return nil, dErrors.New(dErrors.CodeAlreadyCompleted, "KYC is already completed")
	}

	now := requestcontext.Now(ctx)
	if err := s.otp.Check(ctx, refID, subject.key, aadhaarNumber, now); err != nil {
		return nil, err
	}
	var identity ports.AadhaarIdentity
	err = s.callProvider(ctx, "aadhaar_otp_verify", func(ctx context.Context) error {
		var callErr error
		identity, callErr = s.ids.VerifyAadhaarOTP(ctx, refID, code)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	if err := s.otp.Consume(ctx, refID); err != nil {
		return nil, err
	}

	subject.record.Aadhaar = &models.AadhaarIdentity{
		Name:       identity.Name,
		DOB:        identity.DOB,
		Gender:     identity.Gender,
		Address:    identity.Address,
		Last4:      identity.Last4,
		VerifiedAt: now,
	}
	app.UpdatedAt = now
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	s.logAudit(ctx, string(audit.EventAadhaarVerified),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"subject", subject.key,
	)
	return app, nil
}

// fetchPAN asks the registry to compare pan with the Aadhaar identity of
// the subject.
func (s *Service) fetchPAN(ctx context.Context, subject kycSubject, pan string) (decision.PANFacts, error) {
	if subject.done {
		return decision.PANFacts{}, dErrors.New(dErrors.CodeAlreadyCompleted, "KYC is already completed")
	}
	aadhaar := subject.record.Aadhaar
	if aadhaar == nil {
		return decision.PANFacts{}, dErrors.New(dErrors.CodeValidation, "Aadhaar must be verified before PAN")
	}
	var facts decision.PANFacts
	err := s.callProvider(ctx, "verify_pan", func(ctx context.Context) error {
		var callErr error
		facts, callErr = s.ids.VerifyPAN(ctx, ports.PANRequest{PAN: pan, Name: aadhaar.Name, DOB: aadhaar.DOB})
		return callErr
	})
	return facts, err
}

// applyPAN runs table over facts and files the record on the subject. A
// block is audited and returned as an error without touching the subject.
func (s *Service) applyPAN(ctx context.Context, app *models.Application, owner id.UserID, subject kycSubject, pan string, facts decision.PANFacts, table panTable, now time.Time) (decision.Outcome, error) {
	out, err := s.decide(ctx, app, table.check, func() (decision.Outcome, error) { return table.run(facts) })
	if err != nil {
		return decision.Outcome{}, err
	}
	s.auditDecision(ctx, app, owner, subject.key, table.check, out)
	if out.Decision.Blocks() {
		return out, workflow.BlockedError(out)
	}
	subject.record.PAN = &models.PANRecord{Number: pan, VerifiedAt: now}
	subject.record.CrossValidation = models.NewCrossValidationRecord(table.check, *facts.NameMatch, facts.DobMatch, out, now)
	if subject.person != nil {
		subject.person.PANNumber = pan
		subject.person.KYCCompleted = true
	}
	return out, nil
}

// verifyPAN is the PAN phase for a single subject, persisted in one write.
func (s *Service) verifyPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pan string, resolve subjectResolver, table func(app *models.Application) panTable) (*models.Application, error) {
	pan, err := normalizePAN(pan)
	if err != nil {
		return nil, err
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	subject, err := resolve(app)
	if err != nil {
		return nil, err
	}
	facts, err := s.fetchPAN(ctx, subject, pan)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	out, err := s.applyPAN(ctx, app, owner, subject, pan, facts, table(app), now)
	if err != nil {
		return nil, err
	}
	if subject.person == nil {
		if err := s.complete(ctx, app, models.StepKYC, out, now); err != nil {
			return nil, err
		}
	}
	app.UpdatedAt = now
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	s.logAudit(ctx, string(audit.EventKYCCompleted),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"subject", subject.key,
	)
	if subject.person == nil {
		s.afterStep(ctx, app, owner, models.StepKYC)
	}
	return app, nil
}

// InitiateAadhaar sends an Aadhaar OTP for the primary applicant and returns
// the single-use reference id.
func (s *Service) InitiateAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, aadhaarNumber string) (string, error) {
	return s.initiateAadhaar(ctx, appID, owner, aadhaarNumber, applicantSubject)
}

// VerifyAadhaar completes the applicant's Aadhaar OTP and stores the
// identity the PAN and bank checks compare against.
func (s *Service) VerifyAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd AadhaarOTPCommand) (*models.Application, error) {
	return s.verifyAadhaar(ctx, appID, owner, cmd, applicantSubject)
}

// VerifyPAN cross-validates the applicant's PAN against Aadhaar and, unless
// blocked, completes the kyc step.
func (s *Service) VerifyPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pan string) (*models.Application, error) {
	return s.verifyPAN(ctx, appID, owner, pan, applicantSubject, func(app *models.Application) panTable {
		entity := app.EntityType
		return panTable{
			check: models.ContextPANAadhaar,
			run: func(f decision.PANFacts) (decision.Outcome, error) {
				return decision.PANAadhaar(f, entity)
			},
		}
	})
}
