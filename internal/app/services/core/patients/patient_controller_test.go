package patients

import (
	"bytes"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreatePatient), args.Error(1)
}

func (m *MockPatientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Patient), args.Error(1)
}

func (m *MockPatientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.UpdatePatient, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpdatePatient), args.Error(1)
}

func (m *MockPatientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *MockPatientUsecase) CountPatients(ctx context.Context) (*responses.PatientCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PatientCount), args.Error(1)
}

func (m *MockPatientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.PatientList, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PatientList), args.Error(1)
}

func (m *MockPatientUsecase) ListPatientsByRecency(ctx context.Context) (*responses.RecentPatientList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RecentPatientList), args.Error(1)
}

func (m *MockPatientUsecase) ListPatientsByLastUpdated(ctx context.Context, lastUpdated string) (*responses.PatientList, error) {
	args := m.Called(ctx, lastUpdated)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PatientList), args.Error(1)
}

func newTestAPIRouter(mockUsecase *MockPatientUsecase) *chi.Mux {
	controller := NewPatientController(zap.NewNop(), mockUsecase)

	router := chi.NewRouter()
	router.Post("/api/patients", controller.CreatePatient)
	router.Get("/api/patients/count", controller.CountPatients)
	router.Get("/api/patients/search", controller.SearchPatients)
	router.Get("/api/patients/list", controller.ListPatientsByLastUpdated)
	router.Get("/api/patients/recent", controller.ListPatientsByRecency)
	router.Get("/api/patients/{patient_id}", controller.GetPatientByID)
	router.Put("/api/patients/{patient_id}", controller.UpdatePatient)
	router.Delete("/api/patients/{patient_id}", controller.DeletePatient)
	return router
}

func TestPatientController_CreatePatient(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("CreatePatient", mock.Anything, mock.MatchedBy(func(request *requests.CreatePatient) bool {
			return request.FirstName == "Jane" && request.LastName == "Doe"
		})).Return(&responses.CreatePatient{ID: "pat-1", Message: constvars.PatientCreatedSuccess}, nil)

		body := bytes.NewBufferString(`{"first_name":"Jane","last_name":"Doe","gender":"female","birth_date":"1990-05-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":"pat-1","message":"Patient created"}`, rr.Body.String())
	})

	t.Run("Validation Failure Returns Field Errors", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		body := bytes.NewBufferString(`{"last_name":"Doe","gender":"robot","birth_date":"05/01/1990"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"errors":{
			"first_name":"is required",
			"gender":"must be one of [male, female, other, unknown]",
			"birth_date":"must be a valid date in YYYY-MM-DD format"
		}}`, rr.Body.String())
		mockUsecase.AssertNumberOfCalls(t, "CreatePatient", 0)
	})

	t.Run("Malformed JSON Returns Bad Request", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		req := httptest.NewRequest(http.MethodPost, "/api/patients", bytes.NewBufferString(`{`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUsecase.AssertNumberOfCalls(t, "CreatePatient", 0)
	})

	t.Run("Upstream Error Surfaces Raw Text", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		upstreamErr := exceptions.ErrCreateFHIRResource(errors.New("gender must be a valid code"), constvars.ResourcePatient)
		mockUsecase.On("CreatePatient", mock.Anything, mock.AnythingOfType("*requests.CreatePatient")).Return(nil, upstreamErr)

		body := bytes.NewBufferString(`{"first_name":"Jane","last_name":"Doe","gender":"female","birth_date":"1990-05-01"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/patients", body)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"gender must be a valid code"}`, rr.Body.String())
	})
}

func TestPatientController_GetPatientByID(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("GetPatientByID", mock.Anything, "pat-1").Return(&responses.Patient{
			ID:        "pat-1",
			FirstName: "Jane",
			LastName:  "Doe",
			Gender:    "female",
			BirthDate: "1990-05-01",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/patients/pat-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":"pat-1","first_name":"Jane","last_name":"Doe","gender":"female","birth_date":"1990-05-01"}`, rr.Body.String())
	})

	t.Run("Deadline Exceeded Maps To Gateway Timeout", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("GetPatientByID", mock.Anything, "pat-1").Return(nil, context.DeadlineExceeded)

		req := httptest.NewRequest(http.MethodGet, "/api/patients/pat-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.JSONEq(t, `{"error":"server took too long to respond"}`, rr.Body.String())
	})
}

func TestPatientController_UpdatePatient(t *testing.T) {
	mockUsecase := new(MockPatientUsecase)
	router := newTestAPIRouter(mockUsecase)

	mockUsecase.On("UpdatePatient", mock.Anything, mock.MatchedBy(func(request *requests.UpdatePatient) bool {
		return request.PatientID == "pat-1" && request.FirstName == "Janet"
	})).Return(&responses.UpdatePatient{
		ID:      "pat-1",
		Status:  constvars.ResponseSuccess,
		Message: constvars.PatientUpdatedSuccess,
	}, nil)

	body := bytes.NewBufferString(`{"first_name":"Janet","last_name":"Doe","gender":"female","birth_date":"1990-05-01"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/patients/pat-1", body)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"pat-1","status":"success","message":"Patient updated"}`, rr.Body.String())
}

func TestPatientController_DeletePatient(t *testing.T) {
	t.Run("No Content", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("DeletePatient", mock.Anything, "pat-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/patients/pat-1", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Failure Maps To Not Found", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		upstreamErr := exceptions.ErrDeleteFHIRResource(errors.New("no such patient"), constvars.ResourcePatient)
		mockUsecase.On("DeletePatient", mock.Anything, "missing").Return(upstreamErr)

		req := httptest.NewRequest(http.MethodDelete, "/api/patients/missing", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Patient not found"}`, rr.Body.String())
	})
}

func TestPatientController_CountPatients(t *testing.T) {
	mockUsecase := new(MockPatientUsecase)
	router := newTestAPIRouter(mockUsecase)

	mockUsecase.On("CountPatients", mock.Anything).Return(&responses.PatientCount{Count: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patients/count", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":5}`, rr.Body.String())
}

func TestPatientController_SearchPatients(t *testing.T) {
	t.Run("Query Parameters Forwarded", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("SearchPatients", mock.Anything, mock.MatchedBy(func(request *requests.SearchPatients) bool {
			return request.Name == "jane" && request.BirthDate == "1990-05-01" && request.ID == ""
		})).Return(&responses.PatientList{
			Count:   1,
			Results: []responses.PatientSummary{{ID: "pat-1", Name: "Jane Doe"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/patients/search?name=jane&birth_date=1990-05-01", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":1,"results":[{"id":"pat-1","name":"Jane Doe"}]}`, rr.Body.String())
	})

	t.Run("Missing Parameters Return Bad Request", func(t *testing.T) {
		mockUsecase := new(MockPatientUsecase)
		router := newTestAPIRouter(mockUsecase)

		mockUsecase.On("SearchPatients", mock.Anything, mock.AnythingOfType("*requests.SearchPatients")).Return(nil, exceptions.ErrSearchParamsRequired())

		req := httptest.NewRequest(http.MethodGet, "/api/patients/search", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"at least one of name, id or birth_date is required"}`, rr.Body.String())
	})
}

func TestPatientController_ListPatientsByLastUpdated(t *testing.T) {
	mockUsecase := new(MockPatientUsecase)
	router := newTestAPIRouter(mockUsecase)

	mockUsecase.On("ListPatientsByLastUpdated", mock.Anything, "gt2024-01-01").Return(&responses.PatientList{
		Count:   0,
		Results: []responses.PatientSummary{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patients/list?lastUpdated=gt2024-01-01", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":0,"results":[]}`, rr.Body.String())
}

func TestPatientController_ListPatientsByRecency(t *testing.T) {
	mockUsecase := new(MockPatientUsecase)
	router := newTestAPIRouter(mockUsecase)

	mockUsecase.On("ListPatientsByRecency", mock.Anything).Return(&responses.RecentPatientList{
		Count: 1,
		Results: []responses.Patient{
			{ID: "pat-1", FirstName: "Jane", LastName: "Doe", Gender: "female", BirthDate: "1990-05-01"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/patients/recent", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":1,"results":[{"id":"pat-1","first_name":"Jane","last_name":"Doe","gender":"female","birth_date":"1990-05-01"}]}`, rr.Body.String())
}
