package decision

import (
	"strings"

	"dsa-onboarding/internal/verification/match"
)

// Thresholds bound the score-based bank name policy.
type Thresholds struct {
	Block   int
	Approve int
}

// DefaultThresholds are the contract defaults: below 70 blocks, 80 approves.
func DefaultThresholds() Thresholds {
	return Thresholds{Block: 70, Approve: 80}
}

// BankNameFacts pairs the KYC-verified name with the name the bank registry
// holds for the account.
type BankNameFacts struct {
	KYCName  string
	BankName string
}

const (
	reasonBankNameMismatch = "bank account holder name does not match KYC name"
	reasonBelowAutoApprove = "name match below auto-approval threshold"
)

// BankNameMatch applies the score-threshold policy to the KYC and bank names.
func BankNameMatch(f BankNameFacts, th Thresholds) (Outcome, error) {
	if strings.TrimSpace(f.KYCName) == "" {
		return Outcome{}, missing("kyc name")
	}
	if strings.TrimSpace(f.BankName) == "" {
		return Outcome{}, missing("bank registry name")
	}
	return ScoreOutcome(match.Score(f.KYCName, f.BankName).Score, th), nil
}

// ScoreOutcome maps an already computed match score onto the thresholds.
func ScoreOutcome(score int, th Thresholds) Outcome {
	var out Outcome
	switch {
	case score < th.Block:
		out = block(reasonBankNameMismatch)
	case score < th.Approve:
		out = approve()
		out.flag(reasonBelowAutoApprove)
	default:
		out = approve()
	}
	out.Score = &score
	return out
}
