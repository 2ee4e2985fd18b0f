package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/sentinel"
	"dsa-onboarding/pkg/requestcontext"
)

// CreateCommand starts a new application.
type CreateCommand struct {
	EntityType     string
	CompanySubType string
	BusinessName   string
}

// Overview is an application together with where it stands in its plan.
type Overview struct {
	Application *models.Application
	Plan        []models.StepID
	NextStep    models.StepID
	Partners    *workflow.PartnerReadiness
}

// Create opens an application for owner.
func (s *Service) Create(ctx context.Context, owner id.UserID, cmd CreateCommand) (*models.Application, error) {
	if owner.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authenticated user required")
	}
	entityType, err := id.ParseEntityType(cmd.EntityType)
	if err != nil {
		return nil, err
	}
	var sub id.CompanySubType
	if entityType == id.EntityCompany {
		if sub, err = id.ParseCompanySubType(cmd.CompanySubType); err != nil {
			return nil, err
		}
	}
	entity, err := models.EntityOf(entityType, sub)
	if err != nil {
		return nil, err
	}
	businessName := strings.TrimSpace(cmd.BusinessName)
	if _, ok := entity.(models.Partnership); ok && businessName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "business name is required for a partnership")
	}

	now := requestcontext.Now(ctx)
	app := models.NewApplication(id.NewApplicationID(), owner, entity, businessName, now)
	app.Status = workflow.DeriveStatus(app)

	if err := s.store.Create(ctx, app); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "application already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application")
	}
	s.metrics.IncrementApplicationCreated(string(entityType))
	s.logAudit(ctx, string(audit.EventApplicationCreated),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"entity_type", string(entityType),
	)
	return app, nil
}

func (s *Service) Get(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*Overview, error) {
	app, err := s.load(ctx, appID, owner)
	if err != nil {
		return nil, err
	}
	return s.overview(app)
}

// List returns owner's applications, oldest first.
func (s *Service) List(ctx context.Context, owner id.UserID) ([]*models.Application, error) {
	apps, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	return apps, nil
}

func (s *Service) overview(app *models.Application) (*Overview, error) {
	plan, err := workflow.StepsFor(app.EntityType)
	if err != nil {
		return nil, err
	}
	o := &Overview{Application: app, Plan: plan}
	if next, ok := workflow.NextStep(app); ok && !app.Status.IsTerminal() {
		o.NextStep = next
	}
	if app.EntityType == id.EntityPartnership {
		r := workflow.Partners(app, s.limits)
		o.Partners = &r
	}
	return o, nil
}

// ChangeEntityTypeCommand switches an application to another legal form.
// An empty BusinessName keeps the one already on the application.
type ChangeEntityTypeCommand struct {
	EntityType     string
	CompanySubType string
	BusinessName   string
}

// ChangeEntityType switches the legal form while nothing is complete.
func (s *Service) ChangeEntityType(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd ChangeEntityTypeCommand) (*models.Application, error) {
	t, err := id.ParseEntityType(cmd.EntityType)
	if err != nil {
		return nil, err
	}
	var sub id.CompanySubType
	if t == id.EntityCompany {
		if sub, err = id.ParseCompanySubType(cmd.CompanySubType); err != nil {
			return nil, err
		}
	}
	businessName := strings.TrimSpace(cmd.BusinessName)
	app, err := s.mutate(ctx, appID, owner, func(app *models.Application, now time.Time) error {
		if businessName == "" {
			businessName = app.BusinessName
		}
		if t == id.EntityPartnership && businessName == "" {
			return dErrors.New(dErrors.CodeValidation, "business name is required for a partnership")
		}
		if err := workflow.ChangeEntityType(app, t, sub, now); err != nil {
			return err
		}
		app.BusinessName = businessName
		if t != id.EntityPartnership {
			app.Partners = []models.Partner{}
		}
		if t != id.EntityCompany {
			app.Company = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, string(audit.EventEntityTypeChanged),
		"user_id", owner.String(),
		"application_id", app.ID.String(),
		"entity_type", string(t),
	)
	return app, nil
}

// Reject is the admin transition to the rejected state. It is not bound to
// an owner.
func (s *Service) Reject(ctx context.Context, appID id.ApplicationID, actor, reason string) (*models.Application, error) {
	app, err := s.store.FindByID(ctx, appID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	if err := workflow.Reject(app, reason, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.save(ctx, app); err != nil {
		return nil, err
	}
	s.logAudit(ctx, string(audit.EventApplicationRejected),
		"user_id", app.OwnerID.String(),
		"application_id", app.ID.String(),
		"actor_id", actor,
		"reason", app.RejectionReason,
	)
	return app, nil
}
