package patients

import (
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(serverURL string) *patientFhirClient {
	return &patientFhirClient{
		BaseUrl: fmt.Sprintf("%s/%s", serverURL, constvars.ResourcePatient),
		Log:     zap.NewNop(),
	}
}

func TestPatientFhirClient_CreatePatient(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/Patient", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationFHIRJSON, r.Header.Get(constvars.HeaderContentType))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"resourceType":"Patient","id":"pat-1","name":[{"given":["Jane"],"family":"Doe"}],"gender":"female","birthDate":"1990-05-01"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		request := &fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			Name:         []fhir_dto.HumanName{{Given: []string{"Jane"}, Family: "Doe"}},
			Gender:       "female",
			BirthDate:    "1990-05-01",
		}

		created, err := client.CreatePatient(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "pat-1", created.ID, "should carry the upstream assigned id")
	})

	t.Run("Operation Outcome Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"invalid","diagnostics":"gender must be a valid code"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{ResourceType: constvars.ResourcePatient})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "upstream failures should be custom errors")
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "gender must be a valid code", customErr.ClientMessage, "the first diagnostic should surface to the client")
	})

	t.Run("Non Outcome Error Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`upstream exploded`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.CreatePatient(context.Background(), &fhir_dto.Patient{ResourceType: constvars.ResourcePatient})

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, "unexpected status code 500: upstream exploded", customErr.ClientMessage)
	})
}

func TestPatientFhirClient_FindPatientByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/Patient/pat-1", r.URL.Path)

			w.Write([]byte(`{"resourceType":"Patient","id":"pat-1","name":[{"given":["Jane","Q"],"family":"Doe"}],"gender":"female","birthDate":"1990-05-01"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		patient, err := client.FindPatientByID(context.Background(), "pat-1")

		assert.NoError(t, err)
		assert.Equal(t, "pat-1", patient.ID)
		assert.Equal(t, []string{"Jane", "Q"}, patient.Name[0].Given)
		assert.Equal(t, "Doe", patient.Name[0].Family)
	})

	t.Run("Not Found Outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"not-found","diagnostics":"resource Patient/missing is not known"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.FindPatientByID(context.Background(), "missing")

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, "resource Patient/missing is not known", customErr.ClientMessage)
	})
}

func TestPatientFhirClient_UpdatePatient(t *testing.T) {
	t.Run("Replaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/Patient/pat-1", r.URL.Path)

			w.Write([]byte(`{"resourceType":"Patient","id":"pat-1","name":[{"given":["Janet"],"family":"Doe"}],"gender":"female","birthDate":"1990-05-01"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		request := &fhir_dto.Patient{
			ID:           "pat-1",
			ResourceType: constvars.ResourcePatient,
			Name:         []fhir_dto.HumanName{{Given: []string{"Janet"}, Family: "Doe"}},
		}

		updated, err := client.UpdatePatient(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "Janet", updated.Name[0].Given[0])
	})

	t.Run("Upsert Answers Created", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"resourceType":"Patient","id":"pat-9"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		updated, err := client.UpdatePatient(context.Background(), &fhir_dto.Patient{ID: "pat-9", ResourceType: constvars.ResourcePatient})

		assert.NoError(t, err, "a 201 reply on replace should count as success")
		assert.Equal(t, "pat-9", updated.ID)
	})
}

func TestPatientFhirClient_DeletePatient(t *testing.T) {
	t.Run("No Content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/Patient/pat-1", r.URL.Path)

			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		assert.NoError(t, client.DeletePatient(context.Background(), "pat-1"))
	})

	t.Run("OK Also Succeeds", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"information","code":"informational","diagnostics":"deleted"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		assert.NoError(t, client.DeletePatient(context.Background(), "pat-1"))
	})

	t.Run("Any Other Status Fails With Not Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`no such patient`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		err := client.DeletePatient(context.Background(), "missing")

		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
		assert.Equal(t, "no such patient", exceptions.CauseText(err), "the raw body should stay reachable for the audit entry")
	})
}

func TestPatientFhirClient_CountPatients(t *testing.T) {
	t.Run("Total Returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.FhirSummaryCount, r.URL.Query().Get(constvars.FhirParamSummary))

			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":42}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		count, err := client.CountPatients(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 42, count)
	})

	t.Run("Absent Total Reads As Zero", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		count, err := client.CountPatients(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestPatientFhirClient_SearchPatients(t *testing.T) {
	t.Run("Entries Decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "jane", r.URL.Query().Get(constvars.FhirParamName))

			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":2,"entry":[
				{"resource":{"resourceType":"Patient","id":"pat-1","name":[{"given":["Jane"],"family":"Doe"}]}},
				{"resource":{"resourceType":"Patient","id":"pat-2","name":[{"given":["Janet"],"family":"Doe"}]}}
			]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		params := url.Values{}
		params.Set(constvars.FhirParamName, "jane")

		patients, err := client.SearchPatients(context.Background(), params)

		assert.NoError(t, err)
		assert.Len(t, patients, 2)
		assert.Equal(t, "pat-1", patients[0].ID)
		assert.Equal(t, "pat-2", patients[1].ID)
	})

	t.Run("Empty Bundle", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":0}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		params := url.Values{}
		params.Set(constvars.FhirParamName, "nobody")

		patients, err := client.SearchPatients(context.Background(), params)

		assert.NoError(t, err)
		assert.Empty(t, patients)
	})
}

func TestPatientFhirClient_FindPatientsByRecency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get(constvars.FhirParamCount))
		assert.Equal(t, constvars.FhirSortLastUpdatedDesc, r.URL.Query().Get(constvars.FhirParamSort))

		w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":1,"entry":[
			{"resource":{"resourceType":"Patient","id":"pat-1","name":[{"given":["Jane"],"family":"Doe"}]}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	patients, err := client.FindPatientsByRecency(context.Background(), constvars.FhirRecentPatientsMaxCount)

	assert.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestPatientFhirClient_FindPatientsByLastUpdated(t *testing.T) {
	t.Run("Token Forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "gt2024-01-01", r.URL.Query().Get(constvars.FhirParamLastUpdated))

			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":0}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.FindPatientsByLastUpdated(context.Background(), "gt2024-01-01")

		assert.NoError(t, err)
	})

	t.Run("Empty Token Still Sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, r.URL.Query().Has(constvars.FhirParamLastUpdated), "an empty token should still reach the upstream")

			w.Write([]byte(`{"resourceType":"Bundle","type":"searchset","total":0}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.FindPatientsByLastUpdated(context.Background(), "")

		assert.NoError(t, err)
	})
}
