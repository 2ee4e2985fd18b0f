package decision

import (
	"fmt"
	"strings"

	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
)

// Seeding is the PAN to Aadhaar linkage reported by the tax registry.
type Seeding string

const (
	SeedingLinked       Seeding = "y"
	SeedingNotLinked    Seeding = "n"
	SeedingNotAvailable Seeding = "na"
)

// PersonalCategory is the PAN holder category of a natural person.
const PersonalCategory = "individual"

// PANFacts are the normalized results of a PAN registry check. Pointer
// booleans distinguish "registry said false" from "registry said nothing".
type PANFacts struct {
	NameMatch *bool
	DobMatch  *bool
	Seeding   Seeding
	Category  string
	Remarks   string
}

// terminalRemarks are registry remarks that end verification outright.
var terminalRemarks = []string{"deceased", "deleted", "liquidated", "merger"}

const (
	reasonBothMismatch     = "both name and DOB mismatch"
	reasonNameMismatch     = "PAN name does not match Aadhaar name"
	reasonDobMismatch      = "PAN date of birth does not match Aadhaar date of birth"
	reasonNotSeeded        = "PAN is not linked with Aadhaar"
	reasonSeedingUnknown   = "PAN Aadhaar linkage status not available"
	reasonPersonalCategory = "PAN category must be individual for partners and directors"
)

type panFacts struct {
	nameMatch bool
	dobMatch  bool
	seeding   Seeding
	category  string
	remarks   string
}

func (f PANFacts) resolve() (panFacts, error) {
	if f.NameMatch == nil {
		return panFacts{}, missing("name match")
	}
	if f.DobMatch == nil {
		return panFacts{}, missing("dob match")
	}
	category := strings.ToLower(strings.TrimSpace(f.Category))
	if category == "" {
		return panFacts{}, missing("pan category")
	}
	seeding := Seeding(strings.ToLower(strings.TrimSpace(string(f.Seeding))))
	switch seeding {
	case SeedingLinked, SeedingNotLinked, SeedingNotAvailable:
	case "":
		return panFacts{}, missing("aadhaar seeding status")
	default:
		return panFacts{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown aadhaar seeding status %q", f.Seeding))
	}
	return panFacts{
		nameMatch: *f.NameMatch,
		dobMatch:  *f.DobMatch,
		seeding:   seeding,
		category:  category,
		remarks:   f.Remarks,
	}, nil
}

func terminalRemark(remarks string) (string, bool) {
	lower := strings.ToLower(remarks)
	for _, kw := range terminalRemarks {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// crossCheck holds the rules the applicant and partner/director PAN checks
// share once their own preconditions have passed.
func crossCheck(f panFacts) Outcome {
	if kw, ok := terminalRemark(f.remarks); ok {
		return block("PAN registry remarks indicate " + kw)
	}
	if !f.nameMatch && !f.dobMatch {
		return block(reasonBothMismatch)
	}
	out := approve()
	if !f.nameMatch {
		out.flag(reasonNameMismatch)
	}
	if !f.dobMatch {
		out.flag(reasonDobMismatch)
	}
	switch f.seeding {
	case SeedingNotLinked:
		out.flag(reasonNotSeeded)
	case SeedingNotAvailable:
		out.flag(reasonSeedingUnknown)
	}
	return out
}

// PANAadhaar cross-validates the primary applicant's PAN against Aadhaar.
// Individual and proprietorship applicants must hold a personal
// PAN; any other category is malformed input for them.
func PANAadhaar(f PANFacts, entity id.EntityType) (Outcome, error) {
	pf, err := f.resolve()
	if err != nil {
		return Outcome{}, err
	}
	if entity == id.EntityIndividual || entity == id.EntityProprietorship {
		if pf.category != PersonalCategory {
			return Outcome{}, dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("PAN category %q is not valid for %s applicants", f.Category, entity))
		}
	}
	return crossCheck(pf), nil
}

// PartnerDirectorPAN cross-validates a partner or director PAN outside the
// Aadhaar OTP flow. Partners and directors are natural persons, so a non-personal category blocks.
func PartnerDirectorPAN(f PANFacts) (Outcome, error) {
	pf, err := f.resolve()
	if err != nil {
		return Outcome{}, err
	}
	if kw, ok := terminalRemark(pf.remarks); ok {
		return block("PAN registry remarks indicate " + kw), nil
	}
	if pf.category != PersonalCategory {
		return block(reasonPersonalCategory), nil
	}
	return crossCheck(pf), nil
}

// PartnerStrictPAN is the partner check run after Aadhaar OTP verification.
// A name mismatch blocks; DOB and linkage concerns are noted
// without flagging.
func PartnerStrictPAN(f PANFacts) (Outcome, error) {
	pf, err := f.resolve()
	if err != nil {
		return Outcome{}, err
	}
	if kw, ok := terminalRemark(pf.remarks); ok {
		return block("PAN registry remarks indicate " + kw), nil
	}
	if !pf.nameMatch {
		return block(reasonNameMismatch), nil
	}
	out := approve()
	if !pf.dobMatch {
		out.note(reasonDobMismatch)
	}
	if pf.seeding != SeedingLinked {
		out.note(fmt.Sprintf("%s (seeding status: %s)", reasonNotSeeded, pf.seeding))
	}
	return out, nil
}

// Bool returns a pointer to b, for building PANFacts.
func Bool(b bool) *bool { return &b }
