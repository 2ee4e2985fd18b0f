package service

import (
	"regexp"
	"strings"

	dErrors "dsa-onboarding/pkg/domain-errors"
)

var (
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	otpPattern     = regexp.MustCompile(`^[0-9]{6}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
	cinPattern     = regexp.MustCompile(`^[LU][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6}$`)
	llpinPattern   = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)
)

func normalizeAadhaar(s string) (string, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !aadhaarPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "aadhaar number must be 12 digits")
	}
	return s, nil
}

func normalizeOTP(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !otpPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "otp must be 6 digits")
	}
	return s, nil
}

func normalizePAN(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !panPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid PAN format")
	}
	return s, nil
}

func normalizeIFSC(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !ifscPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid IFSC format")
	}
	return s, nil
}

func normalizeAccount(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !accountPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "account number must be 9 to 18 digits")
	}
	return s, nil
}

// normalizeCIN accepts a CIN or an LLPIN.
func normalizeCIN(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !cinPattern.MatchString(s) && !llpinPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid CIN or LLPIN format")
	}
	return s, nil
}

func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	return value, nil
}
