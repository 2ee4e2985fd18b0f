package audit

import "time"

// Event is emitted from the onboarding service to capture each decision and
// transition. Keep it transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	UserID        string    `json:"user_id,omitempty"`
	ApplicationID string    `json:"application_id,omitempty"`
	// Subject identifies who was verified: applicant, partner or director id.
	Subject   string   `json:"subject,omitempty"`
	Step      string   `json:"step,omitempty"`
	Decision  string   `json:"decision,omitempty"`
	Score     *int     `json:"score,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
	// ActorID is set when an admin acts on an application.
	ActorID string `json:"actor_id,omitempty"`
	Device  string `json:"device,omitempty"`
}

type EventAction string

const (
	EventApplicationCreated   EventAction = "application_created"
	EventEntityTypeChanged    EventAction = "entity_type_changed"
	EventStepCompleted        EventAction = "step_completed"
	EventVerificationDecided  EventAction = "verification_decided"
	EventAadhaarOTPIssued     EventAction = "aadhaar_otp_issued"
	EventAadhaarVerified      EventAction = "aadhaar_verified"
	EventKYCCompleted         EventAction = "kyc_completed"
	EventApplicationRejected  EventAction = "application_rejected"
	EventApplicationCompleted EventAction = "application_completed"
)
