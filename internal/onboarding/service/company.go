package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/requestcontext"
)

// directorFanOut bounds concurrent registry calls in a batch PAN check.
const directorFanOut = 4

var directorTable = panTable{check: models.ContextDirectorPAN, run: decision.PartnerDirectorPAN}

// DirectorPANResult is the per-director outcome of a batch PAN check.
type DirectorPANResult struct {
	DirectorID id.DirectorID    `json:"director_id"`
	Outcome    decision.Outcome `json:"outcome"`
	Error      string           `json:"error,omitempty"`
}

func directorSubject(did id.DirectorID) subjectResolver {
	return func(app *models.Application) (kycSubject, error) {
		if err := workflow.EnsureEnterable(app, models.StepDirectors); err != nil {
			return kycSubject{}, err
		}
		d, ok := app.Director(did)
		if !ok {
			return kycSubject{}, dErrors.New(dErrors.CodeNotFound, "director not found")
		}
		return kycSubject{
			key:    fmt.Sprintf("director:%s:%s", app.ID, did),
			record: &d.KYC,
			person: &d.Person,
			done:   d.KYCCompleted,
		}, nil
	}
}

// VerifyCompany looks the company up in the registry, applies the status
// rule and imports its active directors with fresh ids.
func (s *Service) VerifyCompany(ctx context.Context, appID id.ApplicationID, owner id.UserID, cin string) (*models.Application, error) {
	cin, err := normalizeCIN(cin)
	if err != nil {
		return nil, err
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEnterable(app, models.StepCompanyVerification); err != nil {
		return nil, err
	}
	if app.CompletedSteps[models.StepCompanyVerification] {
		return nil, dErrors.New(dErrors.CodeAlreadyCompleted, "company is already verified")
	}

	var facts ports.CompanyFacts
	err = s.callProvider(ctx, "company_lookup", func(ctx context.Context) error {
		var callErr error
		facts, callErr = s.companies.LookupCompany(ctx, cin)
		return callErr
	})
	if err != nil {
		return nil, err
	}
	out, err := s.decide(ctx, app, models.ContextCompanyStatus, func() (decision.Outcome, error) {
		return decision.CompanyStatus(decision.CompanyFacts{Status: facts.Status})
	})
	if err != nil {
		return nil, err
	}
	s.auditDecision(ctx, app, owner, "company:"+cin, models.ContextCompanyStatus, out)
	if out.Decision.Blocks() {
		return nil, workflow.BlockedError(out)
	}

	now := requestcontext.Now(ctx)
	app.Company = &models.CompanyRecord{
		CIN:             cin,
		Name:            facts.Name,
		Status:          facts.Status,
		Directors:       activeDirectors(facts.Directors),
		CrossValidation: models.NewCrossValidationRecord(models.ContextCompanyStatus, true, nil, out, now),
	}
	if facts.Name != "" {
		app.BusinessName = facts.Name
	}
	if err := s.complete(ctx, app, models.StepCompanyVerification, out, now); err != nil {
		return nil, err
	}
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	s.afterStep(ctx, app, owner, models.StepCompanyVerification)
	return app, nil
}

// activeDirectors drops directors whose tenure has ended.
func activeDirectors(in []ports.CompanyDirector) []models.Director {
	out := []models.Director{}
	for _, d := range in {
		if d.EndDate != nil {
			continue
		}
		out = append(out, models.Director{
			ID:          id.NewDirectorID(),
			DIN:         d.DIN,
			Designation: d.Designation,
			BeginDate:   d.BeginDate,
			Person: models.Person{
				Position: len(out) + 1,
				Name:     d.Name,
			},
		})
	}
	return out
}

func (s *Service) InitiateDirectorAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, aadhaarNumber string) (string, error) {
	return s.initiateAadhaar(ctx, appID, owner, aadhaarNumber, directorSubject(did))
}

func (s *Service) VerifyDirectorAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, cmd AadhaarOTPCommand) (*models.Application, error) {
	return s.verifyAadhaar(ctx, appID, owner, cmd, directorSubject(did))
}

// VerifyDirectorPAN completes a director's KYC. Single mismatches flag and
// are kept as warnings; a non-personal PAN blocks.
func (s *Service) VerifyDirectorPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, pan string) (*models.Application, error) {
	return s.verifyPAN(ctx, appID, owner, pan, directorSubject(did), func(*models.Application) panTable {
		return directorTable
	})
}

// VerifyDirectorPANs checks several directors in one request. Registry calls
// run concurrently; a provider failure aborts the batch, while blocks are
// reported per director. Every passing director is saved in one write.
func (s *Service) VerifyDirectorPANs(ctx context.Context, appID id.ApplicationID, owner id.UserID, pans map[id.DirectorID]string) ([]DirectorPANResult, error) {
	if len(pans) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one director PAN is required")
	}
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	if err := workflow.EnsureEnterable(app, models.StepDirectors); err != nil {
		return nil, err
	}
	if app.Company == nil {
		return nil, dErrors.New(dErrors.CodeInvalidState, "company is not verified")
	}

	type job struct {
		subject kycSubject
		did     id.DirectorID
		pan     string
		facts   decision.PANFacts
	}
	jobs := make([]*job, 0, len(pans))
	for _, d := range app.Company.Directors {
		raw, ok := pans[d.ID]
		if !ok {
			continue
		}
		pan, err := normalizePAN(raw)
		if err != nil {
			return nil, err
		}
		subject, err := directorSubject(d.ID)(app)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, &job{subject: subject, did: d.ID, pan: pan})
	}
	if len(jobs) != len(pans) {
		return nil, dErrors.New(dErrors.CodeNotFound, "director not found")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(directorFanOut)
	for _, j := range jobs {
		g.Go(func() error {
			facts, err := s.fetchPAN(gctx, j.subject, j.pan)
			if err != nil {
				return err
			}
			j.facts = facts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	results := make([]DirectorPANResult, 0, len(jobs))
	passed := 0
	for _, j := range jobs {
		out, err := s.applyPAN(ctx, app, owner, j.subject, j.pan, j.facts, directorTable, now)
		result := DirectorPANResult{DirectorID: j.did, Outcome: out}
		switch {
		case err == nil:
			passed++
		case dErrors.Is(err, dErrors.CodeBlockedTransition):
			result.Error = dErrors.MessageOf(err)
		default:
			return nil, err
		}
		results = append(results, result)
	}
	if passed == 0 {
		return results, nil
	}
	app.UpdatedAt = now
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if j.subject.done || !j.subject.person.KYCCompleted {
			continue
		}
		s.logAudit(ctx, string(audit.EventKYCCompleted),
			"user_id", owner.String(),
			"application_id", app.ID.String(),
			"subject", j.subject.key,
		)
	}
	return results, nil
}

// CompleteDirectors closes the directors step once every director has
// completed KYC.
func (s *Service) CompleteDirectors(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error) {
	return s.completeGate(ctx, appID, owner, models.StepDirectors, workflow.DirectorsOutcome)
}
