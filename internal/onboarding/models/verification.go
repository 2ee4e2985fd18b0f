package models

import (
	"time"

	"dsa-onboarding/internal/verification/decision"
)

// CheckContext names which cross-validation produced a record.
type CheckContext string

const (
	ContextPANAadhaar    CheckContext = "pan_aadhaar"
	ContextBankKYC       CheckContext = "bank_kyc"
	ContextDirectorPAN   CheckContext = "director_pan"
	ContextPartnerPAN    CheckContext = "partner_pan"
	ContextCompanyStatus CheckContext = "company_status"
)

// CrossValidationRecord is the persisted result of one verification call.
// Re-verification replaces the record as a whole.
type CrossValidationRecord struct {
	Context   CheckContext      `json:"context"`
	NameMatch bool              `json:"name_match"`
	DobMatch  *bool             `json:"dob_match,omitempty"`
	Score     *int              `json:"score,omitempty"`
	Decision  decision.Decision `json:"decision"`
	Warnings  []string          `json:"warnings"`
	Notes     []string          `json:"notes,omitempty"`
	CheckedAt time.Time         `json:"checked_at"`
}

// NewCrossValidationRecord captures a rule-table outcome.
func NewCrossValidationRecord(ctx CheckContext, nameMatch bool, dobMatch *bool, out decision.Outcome, now time.Time) *CrossValidationRecord {
	warnings := out.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &CrossValidationRecord{
		Context:   ctx,
		NameMatch: nameMatch,
		DobMatch:  dobMatch,
		Score:     out.Score,
		Decision:  out.Decision,
		Warnings:  warnings,
		Notes:     out.Notes,
		CheckedAt: now,
	}
}

// AadhaarIdentity is the demographic data released by an Aadhaar OTP check.
// Only the last four digits of the number are kept.
type AadhaarIdentity struct {
	Name       string    `json:"name"`
	DOB        string    `json:"dob"`
	Gender     string    `json:"gender,omitempty"`
	Address    string    `json:"address,omitempty"`
	Last4      string    `json:"last4"`
	VerifiedAt time.Time `json:"verified_at"`
}

// PANRecord is a PAN that passed registry verification.
type PANRecord struct {
	Number     string    `json:"number"`
	VerifiedAt time.Time `json:"verified_at"`
}

// KYCRecord is the identity evidence for one natural person.
type KYCRecord struct {
	Aadhaar         *AadhaarIdentity       `json:"aadhaar,omitempty"`
	PAN             *PANRecord             `json:"pan,omitempty"`
	SelfieKey       string                 `json:"selfie_key,omitempty"`
	CrossValidation *CrossValidationRecord `json:"cross_validation,omitempty"`
}

// KYCState is the two-phase sub-state of a partner or director.
type KYCState string

const (
	KYCUnverified      KYCState = "unverified"
	KYCAadhaarVerified KYCState = "aadhaar_verified"
	KYCCompleted       KYCState = "kyc_completed"
)

// BankRecord is the verified payout account.
type BankRecord struct {
	AccountNumber   string                 `json:"account_number"`
	IFSC            string                 `json:"ifsc"`
	NameAtBank      string                 `json:"name_at_bank"`
	CrossValidation *CrossValidationRecord `json:"cross_validation,omitempty"`
	VerifiedAt      time.Time              `json:"verified_at"`
}
