package service

import (
	"context"
	"time"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/workflow"
	"dsa-onboarding/internal/verification/decision"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/requestcontext"
)

// ReferenceInput is a personal or business reference.
type ReferenceInput struct {
	Name         string
	Mobile       string
	Email        string
	Relationship string
	Address      string
}

// DocumentInput registers an uploaded file by its storage key.
type DocumentInput struct {
	Type       string
	StorageKey string
}

func (s *Service) AddReference(ctx context.Context, appID id.ApplicationID, owner id.UserID, in ReferenceInput) (*models.Reference, error) {
	name, err := required(in.Name, "reference name")
	if err != nil {
		return nil, err
	}
	mobile, err := required(in.Mobile, "reference mobile")
	if err != nil {
		return nil, err
	}
	relationship, err := required(in.Relationship, "reference relationship")
	if err != nil {
		return nil, err
	}
	ref := models.Reference{
		ID:           id.NewReferenceID(),
		Name:         name,
		Mobile:       mobile,
		Email:        in.Email,
		Relationship: relationship,
		Address:      in.Address,
	}
	_, err = s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepReferences); err != nil {
			return err
		}
		for _, existing := range app.References {
			if existing.Mobile == ref.Mobile {
				return dErrors.New(dErrors.CodeConflict, "a reference with this mobile number already exists")
			}
		}
		app.References = append(app.References, ref)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *Service) RemoveReference(ctx context.Context, appID id.ApplicationID, owner id.UserID, rid id.ReferenceID) (*models.Application, error) {
	return s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepReferences); err != nil {
			return err
		}
		if !app.RemoveReference(rid) {
			return dErrors.New(dErrors.CodeNotFound, "reference not found")
		}
		return nil
	})
}

// CompleteReferences closes the references step once enough are on file.
func (s *Service) CompleteReferences(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error) {
	return s.completeGate(ctx, appID, owner, models.StepReferences, func(app *models.Application) (decision.Outcome, error) {
		return workflow.ReferencesOutcome(app, s.limits)
	})
}

func (s *Service) AddDocument(ctx context.Context, appID id.ApplicationID, owner id.UserID, in DocumentInput) (*models.Document, error) {
	docType, ok := models.ParseDocumentType(in.Type)
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown document type "+in.Type)
	}
	key, err := required(in.StorageKey, "storage key")
	if err != nil {
		return nil, err
	}
	var doc models.Document
	_, err = s.mutate(ctx, appID, owner, func(app *models.Application, now time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepDocuments); err != nil {
			return err
		}
		doc = models.Document{ID: id.NewDocumentID(), Type: docType, StorageKey: key, UploadedAt: now}
		app.Documents = append(app.Documents, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) RemoveDocument(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DocumentID) (*models.Application, error) {
	return s.mutate(ctx, appID, owner, func(app *models.Application, _ time.Time) error {
		if err := workflow.EnsureEditable(app, models.StepDocuments); err != nil {
			return err
		}
		for i := range app.Documents {
			if app.Documents[i].ID == did {
				app.Documents = append(app.Documents[:i], app.Documents[i+1:]...)
				return nil
			}
		}
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	})
}

// CompleteDocuments closes the documents step once every required type is
// uploaded.
func (s *Service) CompleteDocuments(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error) {
	return s.completeGate(ctx, appID, owner, models.StepDocuments, workflow.DocumentsOutcome)
}

// RecordAgreementSigned takes the signal from the external e-sign flow and
// closes the agreement step, which is last in every plan.
func (s *Service) RecordAgreementSigned(ctx context.Context, appID id.ApplicationID, owner id.UserID, externalRef string) (*models.Application, error) {
	ref, err := required(externalRef, "agreement reference")
	if err != nil {
		return nil, err
	}
	signedAt := requestcontext.Now(ctx)
	return s.completeGate(ctx, appID, owner, models.StepAgreement, func(app *models.Application) (decision.Outcome, error) {
		app.Agreement = &models.AgreementRecord{ExternalRef: ref, SignedAt: signedAt}
		return decision.Outcome{Decision: decision.Approve, Warnings: []string{}}, nil
	})
}
