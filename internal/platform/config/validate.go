package config

import (
	"errors"
	"fmt"
)

// Validate rejects configurations that would make the decision tables or
// completion gates incoherent.
func (c *Config) Validate() error {
	p := c.Policy
	if p.BlockThreshold < 0 || p.ApproveThreshold > 100 {
		return fmt.Errorf("policy thresholds must be within 0..100 (block=%d approve=%d)", p.BlockThreshold, p.ApproveThreshold)
	}
	if p.BlockThreshold > p.ApproveThreshold {
		return fmt.Errorf("block threshold %d exceeds approve threshold %d", p.BlockThreshold, p.ApproveThreshold)
	}
	if p.MinPartners < 1 || p.MaxPartners < p.MinPartners {
		return fmt.Errorf("invalid partner bounds min=%d max=%d", p.MinPartners, p.MaxPartners)
	}
	if p.MinReferences < 0 {
		return fmt.Errorf("min references must not be negative")
	}
	if c.Server.IsProduction() {
		if c.Server.JWTSigningKey == "dev-secret-key-change-in-production" {
			return errors.New("JWT_SIGNING_KEY must be set in production")
		}
		if c.Provider.Fake {
			return errors.New("PROVIDER_FAKE is not allowed in production")
		}
	}
	if !c.Provider.Fake && c.Provider.BaseURL == "" {
		return errors.New("PROVIDER_BASE_URL is required unless PROVIDER_FAKE=true")
	}
	if c.OTP.ReferenceTTL <= 0 {
		return errors.New("OTP_REFERENCE_TTL must be positive")
	}
	return nil
}
