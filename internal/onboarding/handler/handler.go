// Package handler exposes the onboarding service over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsa-onboarding/internal/onboarding/models"
	"dsa-onboarding/internal/onboarding/service"
	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/httputil"
	"dsa-onboarding/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service is the onboarding orchestrator as the handler sees it.
type Service interface {
	Create(ctx context.Context, owner id.UserID, cmd service.CreateCommand) (*models.Application, error)
	Get(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*service.Overview, error)
	List(ctx context.Context, owner id.UserID) ([]*models.Application, error)
	ChangeEntityType(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd service.ChangeEntityTypeCommand) (*models.Application, error)
	Reject(ctx context.Context, appID id.ApplicationID, actor, reason string) (*models.Application, error)

	InitiateAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, aadhaarNumber string) (string, error)
	VerifyAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd service.AadhaarOTPCommand) (*models.Application, error)
	VerifyPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pan string) (*models.Application, error)
	VerifyBank(ctx context.Context, appID id.ApplicationID, owner id.UserID, cmd service.BankCommand) (*models.Application, error)

	AddPartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, in service.PartnerInput) (*models.Partner, error)
	UpdatePartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, in service.PartnerInput) (*models.Partner, error)
	RemovePartner(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID) (*models.Application, error)
	InitiatePartnerAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, aadhaarNumber string) (string, error)
	VerifyPartnerAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, cmd service.AadhaarOTPCommand) (*models.Application, error)
	VerifyPartnerPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, pan string) (*models.Application, error)
	CheckPartnerPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, pid id.PartnerID, pan string) (*models.CrossValidationRecord, error)
	CompletePartners(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error)

	VerifyCompany(ctx context.Context, appID id.ApplicationID, owner id.UserID, cin string) (*models.Application, error)
	InitiateDirectorAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, aadhaarNumber string) (string, error)
	VerifyDirectorAadhaar(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, cmd service.AadhaarOTPCommand) (*models.Application, error)
	VerifyDirectorPAN(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DirectorID, pan string) (*models.Application, error)
	VerifyDirectorPANs(ctx context.Context, appID id.ApplicationID, owner id.UserID, pans map[id.DirectorID]string) ([]service.DirectorPANResult, error)
	CompleteDirectors(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error)

	AddReference(ctx context.Context, appID id.ApplicationID, owner id.UserID, in service.ReferenceInput) (*models.Reference, error)
	RemoveReference(ctx context.Context, appID id.ApplicationID, owner id.UserID, rid id.ReferenceID) (*models.Application, error)
	CompleteReferences(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error)
	AddDocument(ctx context.Context, appID id.ApplicationID, owner id.UserID, in service.DocumentInput) (*models.Document, error)
	RemoveDocument(ctx context.Context, appID id.ApplicationID, owner id.UserID, did id.DocumentID) (*models.Application, error)
	CompleteDocuments(ctx context.Context, appID id.ApplicationID, owner id.UserID) (*models.Application, error)
	RecordAgreementSigned(ctx context.Context, appID id.ApplicationID, owner id.UserID, externalRef string) (*models.Application, error)
}

// Handler wires onboarding endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the applicant routes. They expect RequireAuth upstream.
func (h *Handler) Register(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleList)

		r.Route("/{applicationID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/entity-type", h.handleChangeEntityType)

			r.Post("/kyc/aadhaar/otp", h.handleInitiateAadhaar)
			r.Post("/kyc/aadhaar/verify", h.handleVerifyAadhaar)
			r.Post("/kyc/pan", h.handleVerifyPAN)
			r.Post("/bank", h.handleVerifyBank)

			r.Post("/partners", h.handleAddPartner)
			r.Post("/partners/complete", h.handleCompletePartners)
			r.Put("/partners/{partnerID}", h.handleUpdatePartner)
			r.Delete("/partners/{partnerID}", h.handleRemovePartner)
			r.Post("/partners/{partnerID}/aadhaar/otp", h.handleInitiatePartnerAadhaar)
			r.Post("/partners/{partnerID}/aadhaar/verify", h.handleVerifyPartnerAadhaar)
			r.Post("/partners/{partnerID}/pan", h.handleVerifyPartnerPAN)
			r.Post("/partners/{partnerID}/pan/check", h.handleCheckPartnerPAN)

			r.Post("/company/verify", h.handleVerifyCompany)
			r.Post("/directors/pan", h.handleVerifyDirectorPANs)
			r.Post("/directors/complete", h.handleCompleteDirectors)
			r.Post("/directors/{directorID}/aadhaar/otp", h.handleInitiateDirectorAadhaar)
			r.Post("/directors/{directorID}/aadhaar/verify", h.handleVerifyDirectorAadhaar)
			r.Post("/directors/{directorID}/pan", h.handleVerifyDirectorPAN)

			r.Post("/references", h.handleAddReference)
			r.Post("/references/complete", h.handleCompleteReferences)
			r.Delete("/references/{referenceID}", h.handleRemoveReference)
			r.Post("/documents", h.handleAddDocument)
			r.Post("/documents/complete", h.handleCompleteDocuments)
			r.Delete("/documents/{documentID}", h.handleRemoveDocument)
			r.Post("/agreement/signed", h.handleAgreementSigned)
		})
	})
}

// RegisterAdmin mounts back-office routes. They expect RequireAdminToken
// upstream.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/admin/applications/{applicationID}/reject", h.handleReject)
}

// target resolves the caller and the application in the path.
func (h *Handler) target(w http.ResponseWriter, r *http.Request) (id.UserID, id.ApplicationID, bool) {
	owner := requestcontext.UserID(r.Context())
	if owner.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return id.UserID{}, id.ApplicationID{}, false
	}
	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.UserID{}, id.ApplicationID{}, false
	}
	return owner, appID, true
}

// fail logs err with the operation and writes it. Client errors are logged
// at warn, everything else at error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	ctx := r.Context()
	code := dErrors.CodeOf(err)
	args := []any{
		"request_id", requestcontext.RequestID(ctx),
		"operation", operation,
		"code", code,
		"error", err,
	}
	if httputil.StatusFor(code) >= http.StatusInternalServerError || code == dErrors.CodeBlockedTransition {
		h.logger.ErrorContext(ctx, "onboarding request failed", args...)
	} else {
		h.logger.WarnContext(ctx, "onboarding request rejected", args...)
	}
	httputil.WriteError(w, err)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner := requestcontext.UserID(r.Context())
	if owner.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	req, err := decodeAndValidate[CreateApplicationRequest](r)
	if err != nil {
		h.fail(w, r, "create_application", err)
		return
	}
	app, err := h.service.Create(r.Context(), owner, service.CreateCommand{
		EntityType:     req.EntityType,
		CompanySubType: req.CompanySubType,
		BusinessName:   req.BusinessName,
	})
	if err != nil {
		h.fail(w, r, "create_application", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, app)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	owner := requestcontext.UserID(r.Context())
	if owner.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	apps, err := h.service.List(r.Context(), owner)
	if err != nil {
		h.fail(w, r, "list_applications", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ApplicationListResponse{Applications: apps})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	o, err := h.service.Get(r.Context(), appID, owner)
	if err != nil {
		h.fail(w, r, "get_application", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromOverview(o))
}

func (h *Handler) handleChangeEntityType(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[ChangeEntityTypeRequest](r)
	if err != nil {
		h.fail(w, r, "change_entity_type", err)
		return
	}
	app, err := h.service.ChangeEntityType(r.Context(), appID, owner, service.ChangeEntityTypeCommand{
		EntityType:     req.EntityType,
		CompanySubType: req.CompanySubType,
		BusinessName:   req.BusinessName,
	})
	h.respond(w, r, "change_entity_type", app, err)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	appID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, err := decodeAndValidate[RejectRequest](r)
	if err != nil {
		h.fail(w, r, "reject_application", err)
		return
	}
	actor := r.Header.Get("X-Admin-Actor")
	if actor == "" {
		actor = "admin"
	}
	app, err := h.service.Reject(r.Context(), appID, actor, req.Reason)
	h.respond(w, r, "reject_application", app, err)
}

// respond writes the application returned by a mutation.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, operation string, app *models.Application, err error) {
	if err != nil {
		h.fail(w, r, operation, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, app)
}
