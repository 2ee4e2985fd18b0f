// Package fake is a deterministic in-process verification provider for local
// development and service tests. Registries start empty; unknown subjects get
// permissive defaults so a developer can walk the whole workflow.
package fake

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"dsa-onboarding/internal/verification/decision"
	"dsa-onboarding/internal/verification/ports"
	"dsa-onboarding/internal/verification/providers"
)

const providerID = "fake"

// ValidOTP is the only OTP the fake accepts.
const ValidOTP = "123456"

// DefaultName is returned for Aadhaar numbers and accounts nobody registered.
const DefaultName = "DEMO APPLICANT"

// Provider implements ports.IDRegistry, ports.BankRegistry and
// ports.CompanyRegistry.
type Provider struct {
	mu        sync.Mutex
	aadhaar   map[string]ports.AadhaarIdentity
	pan       map[string]decision.PANFacts
	accounts  map[string]ports.BankFacts
	companies map[string]ports.CompanyFacts
	pending   map[string]string
	failures  map[string]error
}

func New() *Provider {
	return &Provider{
		aadhaar:   map[string]ports.AadhaarIdentity{},
		pan:       map[string]decision.PANFacts{},
		accounts:  map[string]ports.BankFacts{},
		companies: map[string]ports.CompanyFacts{},
		pending:   map[string]string{},
		failures:  map[string]error{},
	}
}

func (p *Provider) RegisterAadhaar(number string, identity ports.AadhaarIdentity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if identity.Last4 == "" && len(number) >= 4 {
		identity.Last4 = number[len(number)-4:]
	}
	p.aadhaar[number] = identity
}

func (p *Provider) RegisterPAN(pan string, facts decision.PANFacts) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pan[strings.ToUpper(pan)] = facts
}

func (p *Provider) RegisterAccount(accountNumber string, facts ports.BankFacts) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts[accountNumber] = facts
}

func (p *Provider) RegisterCompany(cin string, facts ports.CompanyFacts) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.companies[strings.ToUpper(cin)] = facts
}

// FailNext makes the next call of operation return an outage.
func (p *Provider) FailNext(operation string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[operation] = providers.NewProviderError(providers.ErrorProviderOutage, providerID, operation, "simulated outage", nil)
}

func (p *Provider) takeFailure(operation string) error {
	if err, ok := p.failures[operation]; ok {
		delete(p.failures, operation)
		return providers.ToDomain(err)
	}
	return nil
}

func (p *Provider) VerifyPAN(ctx context.Context, req ports.PANRequest) (decision.PANFacts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure("verify_pan"); err != nil {
		return decision.PANFacts{}, err
	}
	if facts, ok := p.pan[strings.ToUpper(req.PAN)]; ok {
		return facts, nil
	}
	return decision.PANFacts{
		NameMatch: decision.Bool(true),
		DobMatch:  decision.Bool(true),
		Seeding:   decision.SeedingLinked,
		Category:  decision.PersonalCategory,
	}, nil
}

func (p *Provider) GenerateAadhaarOTP(ctx context.Context, aadhaarNumber string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure("aadhaar_otp"); err != nil {
		return "", err
	}
	ref := uuid.NewString()
	p.pending[ref] = aadhaarNumber
	return ref, nil
}

func (p *Provider) VerifyAadhaarOTP(ctx context.Context, refID, otp string) (ports.AadhaarIdentity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure("aadhaar_otp_verify"); err != nil {
		return ports.AadhaarIdentity{}, err
	}
	number, ok := p.pending[refID]
	if !ok {
		return ports.AadhaarIdentity{}, providers.ToDomain(
			providers.NewProviderError(providers.ErrorRejected, providerID, "aadhaar_otp_verify", "unknown reference id", nil))
	}
	if otp != ValidOTP {
		return ports.AadhaarIdentity{}, providers.ToDomain(
			providers.NewProviderError(providers.ErrorRejected, providerID, "aadhaar_otp_verify", "invalid OTP", nil))
	}
	delete(p.pending, refID)
	if identity, ok := p.aadhaar[number]; ok {
		return identity, nil
	}
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return ports.AadhaarIdentity{Name: DefaultName, DOB: "01-01-1990", Last4: last4}, nil
}

func (p *Provider) VerifyAccount(ctx context.Context, req ports.BankAccountRequest) (ports.BankFacts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure("bank_verify"); err != nil {
		return ports.BankFacts{}, err
	}
	if facts, ok := p.accounts[req.AccountNumber]; ok {
		return facts, nil
	}
	return ports.BankFacts{AccountExists: true, NameAtBank: DefaultName, IMPSSupported: true}, nil
}

func (p *Provider) LookupCompany(ctx context.Context, cin string) (ports.CompanyFacts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.takeFailure("company_lookup"); err != nil {
		return ports.CompanyFacts{}, err
	}
	if facts, ok := p.companies[strings.ToUpper(cin)]; ok {
		return facts, nil
	}
	return ports.CompanyFacts{}, providers.ToDomain(
		providers.NewProviderError(providers.ErrorNotFound, providerID, "company_lookup", "company not found", nil))
}

var (
	_ ports.IDRegistry      = (*Provider)(nil)
	_ ports.BankRegistry    = (*Provider)(nil)
	_ ports.CompanyRegistry = (*Provider)(nil)
)
