package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/coderlevi/candidate-process/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeError maps use case errors onto the HTTP surface. Domain errors get
// a discriminated 4xx body; everything else is a plain 500.
func writeError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		writeErrorCode(w, statusForCode(de.Code), de.Code, de.Message)
		return
	}

	writeErrorCode(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeInvalidFileType:
		return http.StatusUnprocessableEntity
	case usecase.CodeDuplicate:
		return http.StatusConflict
	case usecase.CodeLeadNotFound:
		return http.StatusNotFound
	case usecase.CodeValidation, usecase.CodeInvalidState:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
