package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/coderlevi/candidate-process/internal/entity"
	"github.com/coderlevi/candidate-process/internal/infra/http/handlers"
	"github.com/coderlevi/candidate-process/internal/infra/http/middleware"
	"github.com/coderlevi/candidate-process/internal/usecase"
)

const testAPIKey = "test-secret"

func storedLead(state entity.LeadState) *entity.Lead {
	return &entity.Lead{
		ID:             entity.LeadIDFromEmail("jane.doe@example.com"),
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane.doe@example.com",
		ResumeFilename: "resume.pdf",
		ResumeData:     []byte("%PDF-1.4"),
		State:          state,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// adminRouter mounts the admin handler exactly as main does: behind the
// API key middleware.
func adminRouter(repo *MockLeadRepository) *chi.Mux {
	handler := handlers.NewAdminHandler(usecase.NewLeadAdminUseCase(repo))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(testAPIKey))
		r.Get("/leads", handler.ListLeads)
		r.Get("/leads/{id}", handler.GetLead)
		r.Get("/leads/{id}/resume", handler.DownloadResume)
		r.Put("/leads/{id}/resume", handler.ReplaceResume)
		r.Put("/leads/{id}/state", handler.UpdateState)
	})
	return r
}

func TestAdminEndpointsRequireAPIKey(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := adminRouter(mockRepo)

	requests := []struct {
		method string
		path   string
	}{
		{"GET", "/leads"},
		{"GET", "/leads/some-id"},
		{"GET", "/leads/some-id/resume"},
		{"PUT", "/leads/some-id/resume"},
		{"PUT", "/leads/some-id/state"},
	}

	for _, tc := range requests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)

		var errResponse map[string]string
		json.NewDecoder(w.Body).Decode(&errResponse)
		assert.Equal(t, "UNAUTHORIZED", errResponse["error"])
	}

	// Wrong key is just as dead as no key.
	req := httptest.NewRequest("GET", "/leads", nil)
	req.Header.Set(middleware.APIKeyHeader, "wrong-secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// No store access happened for any of the rejected calls.
	mockRepo.AssertNotCalled(t, "FindAll")
	mockRepo.AssertNotCalled(t, "FindByID")
	mockRepo.AssertNotCalled(t, "FindResume")
	mockRepo.AssertNotCalled(t, "UpdateResume")
	mockRepo.AssertNotCalled(t, "UpdateState")
}

func TestListLeadsHandler(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindAll", mock.Anything).Return([]*entity.Lead{storedLead(entity.StatePending)}, nil)

	router := adminRouter(mockRepo)

	req := httptest.NewRequest("GET", "/leads", nil)
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []usecase.LeadOutput
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Len(t, response, 1)
	assert.Equal(t, "jane.doe@example.com", response[0].Email)
	assert.Equal(t, "PENDING", response[0].State)
}

func TestGetLeadHandlerNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "missing-id").Return(nil, entity.ErrLeadNotFound)

	router := adminRouter(mockRepo)

	req := httptest.NewRequest("GET", "/leads/missing-id", nil)
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "LEAD_NOT_FOUND", errResponse["error"])
}

func TestDownloadResumeHandler(t *testing.T) {
	lead := storedLead(entity.StatePending)

	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindResume", mock.Anything, lead.ID).Return("resume.pdf", []byte("%PDF-1.4"), nil)

	router := adminRouter(mockRepo)

	req := httptest.NewRequest("GET", "/leads/"+lead.ID+"/resume", nil)
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("%PDF-1.4"), w.Body.Bytes())
}

func TestReplaceResumeHandler(t *testing.T) {
	updated := storedLead(entity.StatePending)
	updated.ResumeFilename = "resume2.pdf"

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateResume", mock.Anything, updated.ID, "resume2.pdf", []byte("new bytes")).Return(updated, nil)

	router := adminRouter(mockRepo)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("resume", "resume2.pdf")
	assert.NoError(t, err)
	_, err = part.Write([]byte("new bytes"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest("PUT", "/leads/"+updated.ID+"/resume", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.LeadOutput
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "resume2.pdf", response.ResumeFilename)
	assert.Equal(t, "PENDING", response.State)
}

func TestUpdateStateHandler(t *testing.T) {
	updated := storedLead(entity.StateReachedOut)

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateState", mock.Anything, updated.ID, entity.StateReachedOut).Return(updated, nil)

	router := adminRouter(mockRepo)

	req := httptest.NewRequest("PUT", "/leads/"+updated.ID+"/state", bytes.NewReader([]byte(`{"state":"REACHED_OUT"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response usecase.LeadOutput
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "REACHED_OUT", response.State)
}

func TestUpdateStateHandlerRejectsUnknownState(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	router := adminRouter(mockRepo)

	req := httptest.NewRequest("PUT", "/leads/some-id/state", bytes.NewReader([]byte(`{"state":"CONVERTED"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "INVALID_STATE", errResponse["error"])

	mockRepo.AssertNotCalled(t, "UpdateState")
}

func TestUpdateStateHandlerNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateState", mock.Anything, "missing-id", entity.StatePending).Return(nil, entity.ErrLeadNotFound)

	router := adminRouter(mockRepo)

	req := httptest.NewRequest("PUT", "/leads/missing-id/state", bytes.NewReader([]byte(`{"state":"PENDING"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.APIKeyHeader, testAPIKey)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
