package handler

import (
	"net/http"

	"dsa-onboarding/internal/onboarding/service"
	"dsa-onboarding/pkg/platform/httputil"
)

func toOTPCommand(req *VerifyAadhaarRequest) service.AadhaarOTPCommand {
	return service.AadhaarOTPCommand{
		ReferenceID:   req.ReferenceID,
		OTP:           req.OTP,
		AadhaarNumber: req.AadhaarNumber,
	}
}

func (h *Handler) handleInitiateAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[InitiateAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "initiate_aadhaar", err)
		return
	}
	ref, err := h.service.InitiateAadhaar(r.Context(), appID, owner, req.AadhaarNumber)
	if err != nil {
		h.fail(w, r, "initiate_aadhaar", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OTPInitiatedResponse{ReferenceID: ref})
}

func (h *Handler) handleVerifyAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[VerifyAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "verify_aadhaar", err)
		return
	}
	app, err := h.service.VerifyAadhaar(r.Context(), appID, owner, toOTPCommand(req))
	h.respond(w, r, "verify_aadhaar", app, err)
}

func (h *Handler) handleVerifyPAN(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PANRequest](r)
	if err != nil {
		h.fail(w, r, "verify_pan", err)
		return
	}
	app, err := h.service.VerifyPAN(r.Context(), appID, owner, req.PAN)
	h.respond(w, r, "verify_pan", app, err)
}

func (h *Handler) handleVerifyBank(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[BankRequest](r)
	if err != nil {
		h.fail(w, r, "verify_bank", err)
		return
	}
	app, err := h.service.VerifyBank(r.Context(), appID, owner, service.BankCommand{
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
	})
	h.respond(w, r, "verify_bank", app, err)
}
