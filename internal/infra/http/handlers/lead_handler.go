package handlers

import (
	"io"
	"net/http"

	"github.com/coderlevi/candidate-process/internal/infra/http/middleware"
	"github.com/coderlevi/candidate-process/internal/usecase"
)

// maxResumeUpload bounds how much of a multipart body is held in memory
// while parsing. Not a business rule, just a parse budget.
const maxResumeUpload = 10 << 20

// LeadHandler serves the public intake endpoint.
type LeadHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{SubmitLeadUC: uc}
}

// SubmitLead handles POST /leads (multipart form: first_name, last_name,
// email, resume file).
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
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

	input := usecase.SubmitLeadInput{
		FirstName:      r.FormValue("first_name"),
		LastName:       r.FormValue("last_name"),
		Email:          r.FormValue("email"),
		ResumeFilename: header.Filename,
		ResumeData:     data,
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		if de, ok := err.(*usecase.DomainError); ok {
			middleware.RecordLeadSubmission(de.Code)
		} else {
			middleware.RecordLeadSubmission("error")
		}
		writeError(w, err)
		return
	}

	middleware.RecordLeadSubmission("created")
	writeJSON(w, http.StatusOK, output)
}
