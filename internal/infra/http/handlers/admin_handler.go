package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coderlevi/candidate-process/internal/entity"
	"github.com/coderlevi/candidate-process/internal/infra/http/middleware"
	"github.com/coderlevi/candidate-process/internal/usecase"
)

// AdminHandler serves the internal lead operations. The router mounts it
// behind the API key middleware.
type AdminHandler struct {
	AdminUC *usecase.LeadAdminUseCase
}

func NewAdminHandler(uc *usecase.LeadAdminUseCase) *AdminHandler {
	return &AdminHandler{AdminUC: uc}
}

// ListLeads handles GET /leads.
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.AdminUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// GetLead handles GET /leads/{id}.
func (h *AdminHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorCode(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	lead, err := h.AdminUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// DownloadResume handles GET /leads/{id}/resume, streaming the stored PDF
// as an attachment under its original filename.
func (h *AdminHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorCode(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	filename, data, err := h.AdminUC.GetResume(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ReplaceResume handles PUT /leads/{id}/resume (multipart file).
func (h *AdminHandler) ReplaceResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorCode(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "INVALID_FORM", "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "INVALID_FORM", "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorCode(w, http.StatusBadRequest, "INVALID_FORM", "failed to read resume file")
		return
	}

	lead, err := h.AdminUC.ReplaceResume(r.Context(), id, header.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type updateStateRequest struct {
	State entity.LeadState `json:"state"`
}

// UpdateState handles PUT /leads/{id}/state (JSON body {"state": ...}).
func (h *AdminHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorCode(w, http.StatusBadRequest, "MISSING_ID", "lead id is required")
		return
	}

	var req updateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, usecase.CodeInvalidState, "invalid state payload: "+err.Error())
		return
	}

	lead, err := h.AdminUC.UpdateState(r.Context(), id, req.State)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadStateUpdate(lead.State)
	writeJSON(w, http.StatusOK, lead)
}
