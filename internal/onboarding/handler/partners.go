package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsa-onboarding/internal/onboarding/service"
	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/platform/httputil"
)

func partnerID(w http.ResponseWriter, r *http.Request) (id.PartnerID, bool) {
	pid, err := id.ParsePartnerID(chi.URLParam(r, "partnerID"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.PartnerID{}, false
	}
	return pid, true
}

func (req *PartnerRequest) input() service.PartnerInput {
	return service.PartnerInput{
		Name:   req.Name,
		Mobile: req.Mobile,
		Email:  req.Email,
		DOB:    req.DOB,
		PAN:    req.PAN,
	}
}

func (h *Handler) handleAddPartner(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PartnerRequest](r)
	if err != nil {
		h.fail(w, r, "add_partner", err)
		return
	}
	p, err := h.service.AddPartner(r.Context(), appID, owner, req.input())
	if err != nil {
		h.fail(w, r, "add_partner", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdatePartner(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PartnerRequest](r)
	if err != nil {
		h.fail(w, r, "update_partner", err)
		return
	}
	p, err := h.service.UpdatePartner(r.Context(), appID, owner, pid, req.input())
	if err != nil {
		h.fail(w, r, "update_partner", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleRemovePartner(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	app, err := h.service.RemovePartner(r.Context(), appID, owner, pid)
	h.respond(w, r, "remove_partner", app, err)
}

func (h *Handler) handleInitiatePartnerAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[InitiateAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "initiate_partner_aadhaar", err)
		return
	}
	ref, err := h.service.InitiatePartnerAadhaar(r.Context(), appID, owner, pid, req.AadhaarNumber)
	if err != nil {
		h.fail(w, r, "initiate_partner_aadhaar", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OTPInitiatedResponse{ReferenceID: ref})
}

func (h *Handler) handleVerifyPartnerAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[VerifyAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "verify_partner_aadhaar", err)
		return
	}
	app, err := h.service.VerifyPartnerAadhaar(r.Context(), appID, owner, pid, toOTPCommand(req))
	h.respond(w, r, "verify_partner_aadhaar", app, err)
}

func (h *Handler) handleVerifyPartnerPAN(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PANRequest](r)
	if err != nil {
		h.fail(w, r, "verify_partner_pan", err)
		return
	}
	app, err := h.service.VerifyPartnerPAN(r.Context(), appID, owner, pid, req.PAN)
	h.respond(w, r, "verify_partner_pan", app, err)
}

func (h *Handler) handleCheckPartnerPAN(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	pid, ok := partnerID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PANRequest](r)
	if err != nil {
		h.fail(w, r, "check_partner_pan", err)
		return
	}
	record, err := h.service.CheckPartnerPAN(r.Context(), appID, owner, pid, req.PAN)
	if err != nil {
		h.fail(w, r, "check_partner_pan", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleCompletePartners(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	app, err := h.service.CompletePartners(r.Context(), appID, owner)
	h.respond(w, r, "complete_partners", app, err)
}
