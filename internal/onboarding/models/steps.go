package models

// StepID names a workflow step.
type StepID string

const (
	StepKYC                 StepID = "kyc"
	StepPAN                 StepID = "pan"
	StepBank                StepID = "bank"
	StepReferences          StepID = "references"
	StepDocuments           StepID = "documents"
	StepPartners            StepID = "partners"
	StepCompanyVerification StepID = "company_verification"
	StepDirectors           StepID = "directors"
	StepAgreement           StepID = "agreement"
)

// Status is either the step an application is waiting on or a terminal value.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// StatusAt is the status of an application waiting on step.
func StatusAt(step StepID) Status { return Status(step) }

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// DocumentType classifies an uploaded business document.
type DocumentType string

const (
	DocBusinessProof              DocumentType = "business_proof"
	DocPartnershipDeed            DocumentType = "partnership_deed"
	DocFirmPAN                    DocumentType = "firm_pan"
	DocCertificateOfIncorporation DocumentType = "certificate_of_incorporation"
	DocBoardResolution            DocumentType = "board_resolution"
	DocOther                      DocumentType = "other"
)

// ParseDocumentType reports whether s names a known document type.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch t := DocumentType(s); t {
	case DocBusinessProof, DocPartnershipDeed, DocFirmPAN,
		DocCertificateOfIncorporation, DocBoardResolution, DocOther:
		return t, true
	default:
		return "", false
	}
}
