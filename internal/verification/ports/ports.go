// Package ports defines the external verification collaborators the
// onboarding orchestrators depend on. Implementations return normalized
// facts only and translate transport failures into coded errors:
// CodeExternalService for provider outages and timeouts, CodeValidation
// when the provider rejects the request content.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"dsa-onboarding/internal/verification/decision"
)

// PANRequest asks the tax registry to check a PAN against claimed details.
type PANRequest struct {
	PAN  string
	Name string
	DOB  string
}

// AadhaarIdentity is the demographic data released on OTP verification.
type AadhaarIdentity struct {
	Name    string
	DOB     string
	Gender  string
	Address string
	Last4   string
}

// BankAccountRequest asks the bank registry to verify an account.
type BankAccountRequest struct {
	AccountNumber string
	IFSC          string
}

// BankFacts is the penniless verification result.
type BankFacts struct {
	AccountExists bool
	NameAtBank    string
	IMPSSupported bool
}

// CompanyDirector is one entry of the registry's director list.
type CompanyDirector struct {
	Name        string
	DIN         string
	Designation string
	BeginDate   string
	EndDate     *time.Time
}

// CompanyFacts is the registry record of a company or LLP.
type CompanyFacts struct {
	Name      string
	Status    string
	Directors []CompanyDirector
}

// IDRegistry is the government identity registry (PAN and Aadhaar).
type IDRegistry interface {
	VerifyPAN(ctx context.Context, req PANRequest) (decision.PANFacts, error)
	GenerateAadhaarOTP(ctx context.Context, aadhaarNumber string) (string, error)
	VerifyAadhaarOTP(ctx context.Context, refID, otp string) (AadhaarIdentity, error)
}

// BankRegistry verifies payout accounts.
type BankRegistry interface {
	VerifyAccount(ctx context.Context, req BankAccountRequest) (BankFacts, error)
}

// CompanyRegistry looks up companies and LLPs by CIN or LLPIN.
type CompanyRegistry interface {
	LookupCompany(ctx context.Context, cin string) (CompanyFacts, error)
}
