package domain

import (
	"strings"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

// EntityType is the legal form of the agent being onboarded.
type EntityType string

const (
	EntityIndividual     EntityType = "individual"
	EntityProprietorship EntityType = "proprietorship"
	EntityPartnership    EntityType = "partnership"
	EntityCompany        EntityType = "company"
)

// CompanySubType refines EntityCompany and is empty for every other entity.
type CompanySubType string

const (
	SubTypePvtLtd CompanySubType = "pvt_ltd"
	SubTypeLLP    CompanySubType = "llp"
	SubTypeOPC    CompanySubType = "opc"
)

// ParseEntityType validates external input.
func ParseEntityType(s string) (EntityType, error) {
	switch t := EntityType(strings.ToLower(strings.TrimSpace(s))); t {
	case EntityIndividual, EntityProprietorship, EntityPartnership, EntityCompany:
		return t, nil
	case "":
		return "", dErrors.New(dErrors.CodeValidation, "entity_type is required")
	default:
		return "", dErrors.New(dErrors.CodeValidation, "unknown entity_type: "+s)
	}
}

// ParseCompanySubType validates external input. Empty input is not valid.
func ParseCompanySubType(s string) (CompanySubType, error) {
	switch st := CompanySubType(strings.ToLower(strings.TrimSpace(s))); st {
	case SubTypePvtLtd, SubTypeLLP, SubTypeOPC:
		return st, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "company_sub_type must be one of pvt_ltd, llp, opc")
	}
}
