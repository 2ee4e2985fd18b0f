// Package otp binds Aadhaar OTP reference ids to the subject and Aadhaar
// number they were issued for, so a reference can verify exactly one
// subject exactly once.
package otp

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/sentinel"
)

// Binding is what is stored per reference id. The Aadhaar number itself is
// never stored.
type Binding struct {
	Subject     string    `json:"subject"`
	AadhaarHash []byte    `json:"aadhaar_hash"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Store persists bindings. Get returns sentinel.ErrNotFound for unknown
// references and sentinel.ErrExpired for stale ones; Delete returns
// sentinel.ErrAlreadyUsed when the reference is already gone.
type Store interface {
	Save(ctx context.Context, refID string, b Binding) error
	Get(ctx context.Context, refID string) (Binding, error)
	Delete(ctx context.Context, refID string) error
}

// Guard issues, checks and consumes OTP references.
type Guard struct {
	store    Store
	ttl      time.Duration
	hashCost int
}

type Option func(*Guard)

// WithHashCost overrides the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(g *Guard) { g.hashCost = cost }
}

func NewGuard(store Store, ttl time.Duration, opts ...Option) *Guard {
	g := &Guard{store: store, ttl: ttl, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Issue records that refID was generated for subject and aadhaarNumber.
func (g *Guard) Issue(ctx context.Context, refID, subject, aadhaarNumber string, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(aadhaarNumber), g.hashCost)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "hash aadhaar number")
	}
	b := Binding{Subject: subject, AadhaarHash: hash, ExpiresAt: now.Add(g.ttl)}
	if err := g.store.Save(ctx, refID, b); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "save otp reference")
	}
	return nil
}

// Check verifies refID belongs to subject and aadhaarNumber and is still live.
func (g *Guard) Check(ctx context.Context, refID, subject, aadhaarNumber string, now time.Time) error {
	b, err := g.store.Get(ctx, refID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, sentinel.ErrExpired):
		return dErrors.New(dErrors.CodeValidation, "OTP reference is unknown or expired")
	case err != nil:
		return dErrors.Wrap(err, dErrors.CodeInternal, "load otp reference")
	}
	if !now.Before(b.ExpiresAt) {
		return dErrors.New(dErrors.CodeValidation, "OTP reference is unknown or expired")
	}
	if b.Subject != subject {
		return dErrors.New(dErrors.CodeValidation, "OTP reference was issued for a different subject")
	}
	if bcrypt.CompareHashAndPassword(b.AadhaarHash, []byte(aadhaarNumber)) != nil {
		return dErrors.New(dErrors.CodeValidation, "OTP reference was issued for a different Aadhaar number")
	}
	return nil
}

// Consume retires refID. Losing a race with a concurrent consumer is a
// validation failure so the second verification cannot succeed.
func (g *Guard) Consume(ctx context.Context, refID string) error {
	err := g.store.Delete(ctx, refID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrAlreadyUsed), errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeValidation, "OTP reference already used")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "consume otp reference")
	}
}
