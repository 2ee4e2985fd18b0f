package models

import (
	id "dsa-onboarding/pkg/domain"
)

// Person holds the fields partners and directors share.
type Person struct {
	Position     int       `json:"position"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile,omitempty"`
	Email        string    `json:"email,omitempty"`
	DOB          string    `json:"dob,omitempty"`
	PANNumber    string    `json:"pan_number,omitempty"`
	KYCCompleted bool      `json:"kyc_completed"`
	KYC          KYCRecord `json:"kyc"`
}

// KYCState derives the two-phase sub-state from the stored evidence.
func (p *Person) KYCState() KYCState {
	switch {
	case p.KYCCompleted:
		return KYCCompleted
	case p.KYC.Aadhaar != nil:
		return KYCAadhaarVerified
	default:
		return KYCUnverified
	}
}

type Partner struct {
	ID id.PartnerID `json:"id"`
	Person
}

type Director struct {
	ID          id.DirectorID `json:"id"`
	DIN         string        `json:"din,omitempty"`
	Designation string        `json:"designation,omitempty"`
	BeginDate   string        `json:"begin_date,omitempty"`
	Person
}

// CompanyRecord is what the company registry returned for the applicant.
type CompanyRecord struct {
	CIN             string                 `json:"cin"`
	Name            string                 `json:"name"`
	Status          string                 `json:"status"`
	Directors       []Director             `json:"directors"`
	CrossValidation *CrossValidationRecord `json:"cross_validation,omitempty"`
}

type Reference struct {
	ID           id.ReferenceID `json:"id"`
	Name         string         `json:"name"`
	Mobile       string         `json:"mobile"`
	Email        string         `json:"email,omitempty"`
	Relationship string         `json:"relationship"`
	Address      string         `json:"address,omitempty"`
}
