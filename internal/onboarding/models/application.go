package models

import (
	"time"

	id "dsa-onboarding/pkg/domain"
)

// Application is the aggregate root of one onboarding.
//
// Invariants:
//   - Status is terminal, or the first plan step whose CompletedSteps flag is false
//   - CompanySubType is set only when EntityType is company
//   - Partners, directors, references and documents are addressed by ID; Position
//     only orders them for display
//   - Version increases by one on every successful write
type Application struct {
	ID             id.ApplicationID  `json:"id"`
	OwnerID        id.UserID         `json:"owner_id"`
	EntityType     id.EntityType     `json:"entity_type"`
	CompanySubType id.CompanySubType `json:"company_sub_type,omitempty"`
	BusinessName   string            `json:"business_name,omitempty"`
	Status         Status            `json:"status"`
	CompletedSteps map[StepID]bool   `json:"completed_steps"`

	KYC        KYCRecord        `json:"kyc"`
	Bank       *BankRecord      `json:"bank,omitempty"`
	Partners   []Partner        `json:"partners"`
	Company    *CompanyRecord   `json:"company,omitempty"`
	References []Reference      `json:"references"`
	Documents  []Document       `json:"documents"`
	Agreement  *AgreementRecord `json:"agreement,omitempty"`

	RejectionReason string     `json:"rejection_reason,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Document struct {
	ID         id.DocumentID `json:"id"`
	Type       DocumentType  `json:"type"`
	StorageKey string        `json:"storage_key"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// AgreementRecord is the signal from the external e-sign flow.
type AgreementRecord struct {
	ExternalRef string    `json:"external_ref"`
	SignedAt    time.Time `json:"signed_at"`
}

// NewApplication builds an application with nothing completed. The caller
// derives the initial status.
func NewApplication(appID id.ApplicationID, owner id.UserID, entity Entity, businessName string, now time.Time) *Application {
	app := &Application{
		ID:             appID,
		OwnerID:        owner,
		EntityType:     entity.Kind(),
		BusinessName:   businessName,
		CompletedSteps: map[StepID]bool{},
		Partners:       []Partner{},
		References:     []Reference{},
		Documents:      []Document{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c, ok := entity.(Company); ok {
		app.CompanySubType = c.SubType
	}
	return app
}

// Entity returns the application's legal-form variant.
func (a *Application) Entity() (Entity, error) {
	return EntityOf(a.EntityType, a.CompanySubType)
}

// HasProgress reports whether any step has been completed.
func (a *Application) HasProgress() bool {
	for _, done := range a.CompletedSteps {
		if done {
			return true
		}
	}
	return false
}

// IsOwnedBy reports whether user may act on this application.
func (a *Application) IsOwnedBy(user id.UserID) bool {
	return a.OwnerID == user
}

// Partner returns the partner with the given id.
func (a *Application) Partner(pid id.PartnerID) (*Partner, bool) {
	for i := range a.Partners {
		if a.Partners[i].ID == pid {
			return &a.Partners[i], true
		}
	}
	return nil, false
}

// RemovePartner drops a partner and closes the gap in display positions.
func (a *Application) RemovePartner(pid id.PartnerID) bool {
	for i := range a.Partners {
		if a.Partners[i].ID == pid {
			a.Partners = append(a.Partners[:i], a.Partners[i+1:]...)
			for j := range a.Partners {
				a.Partners[j].Position = j + 1
			}
			return true
		}
	}
	return false
}

// Director returns the director with the given id.
func (a *Application) Director(did id.DirectorID) (*Director, bool) {
	if a.Company == nil {
		return nil, false
	}
	for i := range a.Company.Directors {
		if a.Company.Directors[i].ID == did {
			return &a.Company.Directors[i], true
		}
	}
	return nil, false
}

// Reference returns the reference with the given id.
func (a *Application) Reference(rid id.ReferenceID) (*Reference, bool) {
	for i := range a.References {
		if a.References[i].ID == rid {
			return &a.References[i], true
		}
	}
	return nil, false
}

// RemoveReference drops a reference by id.
func (a *Application) RemoveReference(rid id.ReferenceID) bool {
	for i := range a.References {
		if a.References[i].ID == rid {
			a.References = append(a.References[:i], a.References[i+1:]...)
			return true
		}
	}
	return false
}

// DocumentTypes returns the set of uploaded document types.
func (a *Application) DocumentTypes() map[DocumentType]bool {
	out := make(map[DocumentType]bool, len(a.Documents))
	for _, d := range a.Documents {
		out[d.Type] = true
	}
	return out
}
