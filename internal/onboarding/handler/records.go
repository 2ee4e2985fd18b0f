package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dsa-onboarding/internal/onboarding/service"
	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/platform/httputil"
)

func (h *Handler) handleAddReference(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[ReferenceRequest](r)
	if err != nil {
		h.fail(w, r, "add_reference", err)
		return
	}
	ref, err := h.service.AddReference(r.Context(), appID, owner, service.ReferenceInput{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Relationship: req.Relationship,
		Address:      req.Address,
	})
	if err != nil {
		h.fail(w, r, "add_reference", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ref)
}

func (h *Handler) handleRemoveReference(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	rid, err := id.ParseReferenceID(chi.URLParam(r, "referenceID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	app, err := h.service.RemoveReference(r.Context(), appID, owner, rid)
	h.respond(w, r, "remove_reference", app, err)
}

func (h *Handler) handleCompleteReferences(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	app, err := h.service.CompleteReferences(r.Context(), appID, owner)
	h.respond(w, r, "complete_references", app, err)
}

func (h *Handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[DocumentRequest](r)
	if err != nil {
		h.fail(w, r, "add_document", err)
		return
	}
	doc, err := h.service.AddDocument(r.Context(), appID, owner, service.DocumentInput{Type: req.Type, StorageKey: req.StorageKey})
	if err != nil {
		h.fail(w, r, "add_document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	did, err := id.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	app, err := h.service.RemoveDocument(r.Context(), appID, owner, did)
	h.respond(w, r, "remove_document", app, err)
}

func (h *Handler) handleCompleteDocuments(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	app, err := h.service.CompleteDocuments(r.Context(), appID, owner)
	h.respond(w, r, "complete_documents", app, err)
}

func (h *Handler) handleAgreementSigned(w http.ResponseWriter, r *http.Request) {
	owner, appID, ok := h.target(w, r)
	if !ok {
		return
	}
	req, err := decodeAndValidate[AgreementSignedRequest](r)
	if err != nil {
		h.fail(w, r, "agreement_signed", err)
		return
	}
	app, err := h.service.RecordAgreementSigned(r.Context(), appID, owner, req.ExternalRef)
	h.respond(w, r, "agreement_signed", app, err)
}
