package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "dsa-onboarding/pkg/domain"
	dErrors "dsa-onboarding/pkg/domain-errors"
	"dsa-onboarding/pkg/platform/httputil"
)

func directorID(w http.ResponseWriter, r *http.Request) (id.DirectorID, bool) {
	did, err := id.ParseDirectorID(chi.URLParam(r, "directorID"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.DirectorID{}, false
	}
	return did, true
}

func (h *Handler) handleVerifyCompany(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[CompanyRequest](r)
	if err != nil {
		h.fail(w, r, "verify_company", err)
		return
	}
	app, err := h.service.VerifyCompany(r.Context(), appID, owner, req.CIN)
	h.respond(w, r, "verify_company", app, err)
}

func (h *Handler) handleInitiateDirectorAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	did, ok := directorID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[InitiateAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "initiate_director_aadhaar", err)
		return
	}
	ref, err := h.service.InitiateDirectorAadhaar(r.Context(), appID, owner, did, req.AadhaarNumber)
	if err != nil {
		h.fail(w, r, "initiate_director_aadhaar", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OTPInitiatedResponse{ReferenceID: ref})
}

func (h *Handler) handleVerifyDirectorAadhaar(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	did, ok := directorID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[VerifyAadhaarRequest](r)
	if err != nil {
		h.fail(w, r, "verify_director_aadhaar", err)
		return
	}
	app, err := h.service.VerifyDirectorAadhaar(r.Context(), appID, owner, did, toOTPCommand(req))
	h.respond(w, r, "verify_director_aadhaar", app, err)
}

func (h *Handler) handleVerifyDirectorPAN(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	did, ok := directorID(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[PANRequest](r)
	if err != nil {
		h.fail(w, r, "verify_director_pan", err)
		return
	}
	app, err := h.service.VerifyDirectorPAN(r.Context(), appID, owner, did, req.PAN)
	h.respond(w, r, "verify_director_pan", app, err)
}

func (h *Handler) handleVerifyDirectorPANs(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[DirectorPANsRequest](r)
	if err != nil {
		h.fail(w, r, "verify_director_pans", err)
		return
	}
	pans := make(map[id.DirectorID]string, len(req.Directors))
	for _, d := range req.Directors {
		did, err := id.ParseDirectorID(d.DirectorID)
		if err != nil {
			h.fail(w, r, "verify_director_pans", err)
			return
		}
		if _, dup := pans[did]; dup {
			h.fail(w, r, "verify_director_pans", dErrors.New(dErrors.CodeValidation, "director_id "+d.DirectorID+" is listed twice"))
			return
		}
		pans[did] = d.PAN
	}
	results, err := h.service.VerifyDirectorPANs(r.Context(), appID, owner, pans)
	if err != nil {
		h.fail(w, r, "verify_director_pans", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, DirectorPANsResponse{Results: results})
}

func (h *Handler) handleCompleteDirectors(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	app, err := h.service.CompleteDirectors(r.Context(), appID, owner)
	h.respond(w, r, "complete_directors", app, err)
}
