package models

import (
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
)

// Entity is the closed set of legal forms an application can take.
// Only this package can add variants; callers switch on the concrete type.
type Entity interface {
	Kind() id.EntityType
	isEntity()
}

type Individual struct{}

type Proprietorship struct{}

type Partnership struct{}

type Company struct {
	SubType id.CompanySubType
}

func (Individual) Kind() id.EntityType     { return id.EntityIndividual }
func (Proprietorship) Kind() id.EntityType { return id.EntityProprietorship }
func (Partnership) Kind() id.EntityType    { return id.EntityPartnership }
func (Company) Kind() id.EntityType        { return id.EntityCompany }

func (Individual) isEntity()     {}
func (Proprietorship) isEntity() {}
func (Partnership) isEntity()    {}
func (Company) isEntity()        {}

// EntityOf lifts a stored entity type into its variant. The sub-type is
// carried for companies and ignored otherwise.
func EntityOf(t id.EntityType, sub id.CompanySubType) (Entity, error) {
	switch t {
	case id.EntityIndividual:
		return Individual{}, nil
	case id.EntityProprietorship:
		return Proprietorship{}, nil
	case id.EntityPartnership:
		return Partnership{}, nil
	case id.EntityCompany:
		return Company{SubType: sub}, nil
	default:
		return nil, dErrors.New(dErrors.CodeInternal, "config: unknown entity type "+string(t))
	}
}

// IsNaturalPerson reports whether the applicant itself is the KYC subject.
func IsNaturalPerson(e Entity) bool {
	switch e.(type) {
	case Individual, Proprietorship:
		return true
	case Partnership, Company:
		return false
	default:
		return false
	}
}
