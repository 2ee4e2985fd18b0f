// Package domain holds typed identifiers shared across modules.
//
// Each identifier wraps a UUID so that an application id can never be passed
// where a partner id is expected. Construct ids from external input only via
// the Parse functions, which reject empty, malformed and nil UUIDs.
package domain

import (
	"github.com/google/uuid"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

type (
	UserID        uuid.UUID
	ApplicationID uuid.UUID
	PartnerID     uuid.UUID
	DirectorID    uuid.UUID
	ReferenceID   uuid.UUID
	DocumentID    uuid.UUID
)

// maxIDLength bounds input before handing it to the UUID parser.
const maxIDLength = 64

func parseUUID(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if len(s) > maxIDLength {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	return u, nil
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user_id")
	return UserID(u), err
}

func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parseUUID(s, "application_id")
	return ApplicationID(u), err
}

func ParsePartnerID(s string) (PartnerID, error) {
	u, err := parseUUID(s, "partner_id")
	return PartnerID(u), err
}

func ParseDirectorID(s string) (DirectorID, error) {
	u, err := parseUUID(s, "director_id")
	return DirectorID(u), err
}

func ParseReferenceID(s string) (ReferenceID, error) {
	u, err := parseUUID(s, "reference_id")
	return ReferenceID(u), err
}

func ParseDocumentID(s string) (DocumentID, error) {
	u, err := parseUUID(s, "document_id")
	return DocumentID(u), err
}

func NewApplicationID() ApplicationID { return ApplicationID(uuid.New()) }
func NewPartnerID() PartnerID         { return PartnerID(uuid.New()) }
func NewDirectorID() DirectorID       { return DirectorID(uuid.New()) }
func NewReferenceID() ReferenceID     { return ReferenceID(uuid.New()) }
func NewDocumentID() DocumentID       { return DocumentID(uuid.New()) }

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id PartnerID) String() string     { return uuid.UUID(id).String() }
func (id DirectorID) String() string    { return uuid.UUID(id).String() }
func (id ReferenceID) String() string   { return uuid.UUID(id).String() }
func (id DocumentID) String() string    { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed ids round-trip through JSON as plain UUID strings.
func (id ApplicationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id PartnerID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id DirectorID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id ReferenceID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id DocumentID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id UserID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }

func (id *ApplicationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PartnerID) UnmarshalText(b []byte) error     { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *DirectorID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ReferenceID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *DocumentID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *UserID) UnmarshalText(b []byte) error        { return (*uuid.UUID)(id).UnmarshalText(b) }
