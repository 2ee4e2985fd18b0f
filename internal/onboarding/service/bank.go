package service

import (
	"context"
	"fmt"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/requestcontext"
)

// BankCommand names the payout account to verify.
type BankCommand struct {
	AccountNumber string
	IFSC          string
}

// VerifyBank runs penniless verification and the bank name match. A block
// leaves the bank step incomplete and names both sides of the comparison.
func (s *Service) VerifyBank(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd BankCommand) (*models.Application, error) {
	account, err := normalizeAccount(cmd.AccountNumber)
	if err != nil {
		return nil, err
	}
	ifsc, err := normalizeIFSC(cmd.IFSC)
	if err != nil {
		return nil, err
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEnterable(app, models.StepBank); err != nil {
		return nil, err
	}
	expected, err := accountHolderName(app)
	if err != nil {
		return nil, err
	}

	var facts ports.BankFacts
	err = s.callProvider(ctx, "bank_verify", func(ctx context.Context) error {
		var callErr error
		facts, callErr = s.banks.VerifyAccount(ctx, ports.BankAccountRequest{AccountNumber: account, IFSC: ifsc})
		return callErr
	})
	if err != nil {
		return nil, err
	}
	if !facts.IMPSSupported {
		return nil, dErrors.New(dErrors.CodeValidation, "bank branch does not support IMPS verification")
	}
	if !facts.AccountExists {
		return nil, dErrors.New(dErrors.CodeValidation, "bank account does not exist")
	}

	out, err := s.decide(ctx, app, models.ContextBankKYC, func() (decision.Outcome, error) {
		return decision.BankNameMatch(decision.BankNameFacts{KYCName: expected, BankName: facts.NameAtBank}, s.thresholds)
	})
	if err != nil {
		return nil, err
	}
	subject := "applicant:" + app.ID.String()
	s.auditDecision(ctx, app, owner, subject, models.ContextBankKYC, out)
	if out.Decision.Blocks() {
		return nil, dErrors.New(dErrors.CodeBlockedTransition, fmt.Sprintf("%s: KYC name %q, bank account name %q",
			dErrors.MessageOf(workflow.BlockedError(out)), expected, facts.NameAtBank))
	}

	now := requestcontext.Now(ctx)
	nameMatch := out.Score != nil && *out.Score >= s.thresholds.Approve
	app.Bank = &models.BankRecord{
		AccountNumber:   account,
		IFSC:            ifsc,
		NameAtBank:      facts.NameAtBank,
		CrossValidation: models.NewCrossValidationRecord(models.ContextBankKYC, nameMatch, nil, out, now),
		VerifiedAt:      now,
	}
	if err := s.complete(ctx, app, models.StepBank, out, now); err != nil {
		return nil, err
	}
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	s.afterStep(ctx, app, owner, models.StepBank)
	return app, nil
}

// accountHolderName is the name the bank record must match: the Aadhaar
// name of a natural person, the firm or company name otherwise.
func accountHolderName(app *models.Application) (string, error) {
	entity, err := app.Entity()
	if err != nil {
		return "", err
	}
	switch entity.(type) {
	case models.Individual, models.Proprietorship:
		if app.KYC.Aadhaar == nil {
			return "", nil
		}
		return app.KYC.Aadhaar.Name, nil
	case models.Partnership:
		return app.BusinessName, nil
	case models.Company:
		if app.Company != nil && app.Company.Name != "" {
			return app.Company.Name, nil
		}
		return app.BusinessName, nil
	default:
		return "", dErrors.New(dErrors.CodeInternal, "unhandled entity type")
	}
}
