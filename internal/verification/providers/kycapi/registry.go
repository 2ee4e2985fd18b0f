package kycapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/internal/verification/providers"
)

const consentReason = "DSA onboarding verification"

type panRequest struct {
	Entity       string `json:"@entity"`
	PAN          string `json:"pan"`
	NameAsPerPAN string `json:"name_as_per_pan"`
	DateOfBirth  string `json:"date_of_birth"`
	Consent      string `json:"consent"`
	Reason       string `json:"reason"`
}

type panResponse struct {
	Status        string  `json:"status"`
	Category      string  `json:"category"`
	NameMatch     *bool   `json:"name_as_per_pan_match"`
	DobMatch      *bool   `json:"date_of_birth_match"`
	SeedingStatus string  `json:"aadhaar_seeding_status"`
	Remarks       *string `json:"remarks"`
}

// VerifyPAN checks a PAN against the claimed name and date of birth.
func (c *Client) VerifyPAN(ctx context.Context, req ports.PANRequest) (decision.PANFacts, error) {
	body := panRequest{
		Entity:       "in.co.sandbox.kyc.pan_verification.request",
		PAN:          strings.ToUpper(strings.TrimSpace(req.PAN)),
		NameAsPerPAN: req.Name,
		DateOfBirth:  req.DOB,
		Consent:      "Y",
		Reason:       consentReason,
	}
	var resp panResponse
	if err := c.call(ctx, "verify_pan", http.MethodPost, "/kyc/pan/verify", body, &resp); err != nil {
		return decision.PANFacts{}, providers.ToDomain(err)
	}
	if !strings.EqualFold(resp.Status, "valid") {
		return decision.PANFacts{}, providers.ToDomain(
			providers.NewProviderError(providers.ErrorRejected, providerID, "verify_pan", "PAN is not valid", nil))
	}
	facts := decision.PANFacts{
		NameMatch: resp.NameMatch,
		DobMatch:  resp.DobMatch,
		Seeding:   decision.Seeding(strings.ToLower(resp.SeedingStatus)),
		Category:  resp.Category,
	}
	if resp.Remarks != nil {
		facts.Remarks = *resp.Remarks
	}
	return facts, nil
}

type otpRequest struct {
	Entity        string `json:"@entity"`
	AadhaarNumber string `json:"aadhaar_number"`
	Consent       string `json:"consent"`
	Reason        string `json:"reason"`
}

type otpResponse struct {
	ReferenceID json.Number `json:"reference_id"`
	Message     string      `json:"message"`
}

// GenerateAadhaarOTP sends an OTP to the mobile linked with the Aadhaar number.
func (c *Client) GenerateAadhaarOTP(ctx context.Context, aadhaarNumber string) (string, error) {
	body := otpRequest{
		Entity:        "in.co.sandbox.kyc.aadhaar.okyc.otp.request",
		AadhaarNumber: aadhaarNumber,
		Consent:       "y",
		Reason:        consentReason,
	}
	var resp otpResponse
	if err := c.call(ctx, "aadhaar_otp", http.MethodPost, "/kyc/aadhaar/okyc/otp", body, &resp); err != nil {
		return "", providers.ToDomain(err)
	}
	if resp.ReferenceID.String() == "" {
		return "", providers.ToDomain(
			providers.NewProviderError(providers.ErrorBadData, providerID, "aadhaar_otp", "missing reference id", nil))
	}
	return resp.ReferenceID.String(), nil
}

type otpVerifyRequest struct {
	Entity      string `json:"@entity"`
	ReferenceID string `json:"reference_id"`
	OTP         string `json:"otp"`
}

type otpVerifyResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Name         string `json:"name"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
	FullAddress  string `json:"full_address"`
	MaskedNumber string `json:"masked_number"`
}

// VerifyAadhaarOTP exchanges an OTP for the Aadhaar holder's demographics.
func (c *Client) VerifyAadhaarOTP(ctx context.Context, refID, otp string) (ports.AadhaarIdentity, error) {
	body := otpVerifyRequest{
		Entity:      "in.co.sandbox.kyc.aadhaar.okyc.request",
		ReferenceID: refID,
		OTP:         otp,
	}
	var resp otpVerifyResponse
	if err := c.call(ctx, "aadhaar_otp_verify", http.MethodPost, "/kyc/aadhaar/okyc/otp/verify", body, &resp); err != nil {
		return ports.AadhaarIdentity{}, providers.ToDomain(err)
	}
	if !strings.EqualFold(resp.Status, "valid") {
		msg := resp.Message
		if msg == "" {
			msg = "invalid OTP"
		}
		return ports.AadhaarIdentity{}, providers.ToDomain(
			providers.NewProviderError(providers.ErrorRejected, providerID, "aadhaar_otp_verify", msg, nil))
	}
	return ports.AadhaarIdentity{
		Name:    resp.Name,
		DOB:     resp.DateOfBirth,
		Gender:  resp.Gender,
		Address: resp.FullAddress,
		Last4:   lastFour(resp.MaskedNumber),
	}, nil
}

type ifscResponse struct {
	IMPS bool   `json:"IMPS"`
	Bank string `json:"BANK"`
}

type pennilessResponse struct {
	AccountExists bool   `json:"account_exists"`
	NameAtBank    string `json:"name_at_bank"`
}

// VerifyAccount checks the branch supports IMPS and then runs a penniless
// verification. A branch without IMPS returns IMPSSupported=false without
// touching the account.
func (c *Client) VerifyAccount(ctx context.Context, req ports.BankAccountRequest) (ports.BankFacts, error) {
	ifsc := strings.ToUpper(strings.TrimSpace(req.IFSC))
	var branch ifscResponse
	if err := c.call(ctx, "ifsc_lookup", http.MethodGet, "/bank/"+url.PathEscape(ifsc), nil, &branch); err != nil {
		return ports.BankFacts{}, providers.ToDomain(err)
	}
	if !branch.IMPS {
		return ports.BankFacts{IMPSSupported: false}, nil
	}

	path := "/bank/" + url.PathEscape(ifsc) + "/accounts/" + url.PathEscape(req.AccountNumber) + "/penniless-verify"
	var resp pennilessResponse
	if err := c.call(ctx, "bank_verify", http.MethodGet, path, nil, &resp); err != nil {
		return ports.BankFacts{}, providers.ToDomain(err)
	}
	return ports.BankFacts{
		AccountExists: resp.AccountExists,
		NameAtBank:    strings.TrimSpace(resp.NameAtBank),
		IMPSSupported: true,
	}, nil
}

type companyRequest struct {
	Entity  string `json:"@entity"`
	ID      string `json:"id"`
	Consent string `json:"consent"`
	Reason  string `json:"reason"`
}

type companyResponse struct {
	Master struct {
		Name   string `json:"company_name"`
		Status string `json:"company_status"`
	} `json:"company_master_data"`
	Directors []struct {
		Name        string `json:"name"`
		DIN         string `json:"din"`
		Designation string `json:"designation"`
		BeginDate   string `json:"begin_date"`
		EndDate     string `json:"end_date"`
	} `json:"directors"`
}

const registryDateLayout = "2006-01-02"

// LookupCompany fetches master data and the director list for a CIN or LLPIN.
func (c *Client) LookupCompany(ctx context.Context, cin string) (ports.CompanyFacts, error) {
	body := companyRequest{
		Entity:  "in.co.sandbox.kyc.mca.master_data.request",
		ID:      strings.ToUpper(strings.TrimSpace(cin)),
		Consent: "y",
		Reason:  consentReason,
	}
	var resp companyResponse
	if err := c.call(ctx, "company_lookup", http.MethodPost, "/mca/company/master-data/search", body, &resp); err != nil {
		return ports.CompanyFacts{}, providers.ToDomain(err)
	}
	facts := ports.CompanyFacts{Name: resp.Master.Name, Status: resp.Master.Status}
	for _, d := range resp.Directors {
		dir := ports.CompanyDirector{
			Name:        d.Name,
			DIN:         d.DIN,
			Designation: d.Designation,
			BeginDate:   d.BeginDate,
		}
		if end := strings.TrimSpace(d.EndDate); end != "" && end != "-" {
			if t, err := time.Parse(registryDateLayout, end); err == nil {
				dir.EndDate = &t
			}
		}
		facts.Directors = append(facts.Directors, dir)
	}
	return facts, nil
}

func lastFour(masked string) string {
	digits := make([]rune, 0, 4)
	for _, r := range masked {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
