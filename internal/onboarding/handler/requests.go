package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/httputil"
)

var ifscPattern = regexp.MustCompile(`^[A-Za-z]{4}0[A-Za-z0-9]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return ifscPattern.MatchString(fl.Field().String())
	})
	return v
}

// decodeAndValidate reads a JSON body into T and runs the struct tags.
func decodeAndValidate[T any](r *http.Request) (*T, error) {
	var req T
	if err := httputil.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := validate.Struct(&req); err != nil {
		return nil, validationError(err)
	}
	return &req, nil
}

// validationError flattens validator output into one domain error naming
// every failing field.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
	}
	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		problems = append(problems, fmt.Sprintf("%s %s", fe.Field(), describe(fe)))
	}
	return dErrors.New(dErrors.CodeValidation, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return "must be " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "numeric":
		return "must contain digits only"
	case "alphanum":
		return "must be alphanumeric"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "ifsc":
		return "must be a valid IFSC code"
	default:
		return "is invalid"
	}
}

type CreateApplicationRequest struct {
	EntityType     string `json:"entity_type" validate:"required,oneof=individual proprietorship partnership company"`
	CompanySubType string `json:"company_sub_type" validate:"omitempty,oneof=pvt_ltd llp opc"`
	BusinessName   string `json:"business_name" validate:"max=200"`
}

type ChangeEntityTypeRequest struct {
	EntityType     string `json:"entity_type" validate:"required,oneof=individual proprietorship partnership company"`
	CompanySubType string `json:"company_sub_type" validate:"omitempty,oneof=pvt_ltd llp opc"`
	BusinessName   string `json:"business_name" validate:"max=200"`
}

type InitiateAadhaarRequest struct {
	AadhaarNumber string `json:"aadhaar_number" validate:"required,len=12,numeric"`
}

type VerifyAadhaarRequest struct {
	ReferenceID   string `json:"reference_id" validate:"required,max=128"`
	OTP           string `json:"otp" validate:"required,len=6,numeric"`
	AadhaarNumber string `json:"aadhaar_number" validate:"required,len=12,numeric"`
}

type PANRequest struct {
	PAN string `json:"pan" validate:"required,len=10,alphanum"`
}

type BankRequest struct {
	AccountNumber string `json:"account_number" validate:"required,min=9,max=18,numeric"`
	IFSC          string `json:"ifsc" validate:"required,ifsc"`
}

type PartnerRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Mobile string `json:"mobile" validate:"omitempty,min=10,max=13"`
	Email  string `json:"email" validate:"omitempty,email"`
	DOB    string `json:"dob" validate:"omitempty,max=10"`
	PAN    string `json:"pan" validate:"omitempty,len=10,alphanum"`
}

type CompanyRequest struct {
	CIN string `json:"cin" validate:"required,min=8,max=21"`
}

type DirectorPANsRequest struct {
	Directors []DirectorPAN `json:"directors" validate:"required,min=1,dive"`
}

type DirectorPAN struct {
	DirectorID string `json:"director_id" validate:"required,uuid"`
	PAN        string `json:"pan" validate:"required,len=10,alphanum"`
}

type ReferenceRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Mobile       string `json:"mobile" validate:"required,min=10,max=13"`
	Email        string `json:"email" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"required,max=50"`
	Address      string `json:"address" validate:"max=500"`
}

type DocumentRequest struct {
	Type       string `json:"type" validate:"required"`
	StorageKey string `json:"storage_key" validate:"required,max=500"`
}

type AgreementSignedRequest struct {
	ExternalRef string `json:"external_ref" validate:"required,max=200"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}
