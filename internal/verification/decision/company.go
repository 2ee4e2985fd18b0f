package decision

import (
	"fmt"
	"strings"
)

// CompanyFacts is the registry status of a company or LLP.
type CompanyFacts struct {
	Status string
}

var closedCompanyStatuses = map[string]struct{}{
	"strike off":        {},
	"struck off":        {},
	"dissolved":         {},
	"liquidated":        {},
	"under liquidation": {},
	"amalgamated":       {},
}

// CompanyStatus gates the company verification step on the registry status.
func CompanyStatus(f CompanyFacts) (Outcome, error) {
	status := strings.Join(strings.Fields(strings.ToLower(f.Status)), " ")
	if status == "" {
		return Outcome{}, missing("company status")
	}
	if status == "active" {
		return approve(), nil
	}
	if _, closed := closedCompanyStatuses[status]; closed {
		return block(fmt.Sprintf("company registry status is %q", f.Status)), nil
	}
	out := approve()
	out.flag(fmt.Sprintf("company registry status %q requires review", f.Status))
	return out, nil
}
