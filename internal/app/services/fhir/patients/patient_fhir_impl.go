package patients

import (
	"bytes"
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

var (
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	BaseUrl string
	Log     *zap.Logger
}

func NewPatientFhirClient(baseUrl string, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		client := &patientFhirClient{
			BaseUrl: fmt.Sprintf("%s/%s", baseUrl, constvars.ResourcePatient),
			Log:     logger,
		}
		patientFhirClientInstance = client
	})
	return patientFhirClientInstance
}

// extractOutcomeError turns a non-2xx body into the upstream failure text:
// the first OperationOutcome diagnostic when present, the raw body otherwise.
func extractOutcomeError(statusCode int, bodyBytes []byte) error {
	var outcome fhir_dto.OperationOutcome
	err := json.Unmarshal(bodyBytes, &outcome)
	if err == nil && len(outcome.Issue) > 0 {
		return errors.New(outcome.Issue[0].Diagnostics)
	}
	return fmt.Errorf("unexpected status code %d: %s", statusCode, string(bodyBytes))
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.CreatePatient error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCreateFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErrorIssue := extractOutcomeError(resp.StatusCode, bodyBytes)
		c.Log.Error("patientFhirClient.CreatePatient FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrCreateFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.FindPatientByID error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrGetFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErrorIssue := extractOutcomeError(resp.StatusCode, bodyBytes)
		c.Log.Error("patientFhirClient.FindPatientByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseUrl, request.ID), bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// A replace may legitimately answer 200 or, for an upsert, 201.
	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.UpdatePatient error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrUpdateFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErrorIssue := extractOutcomeError(resp.StatusCode, bodyBytes)
		c.Log.Error("patientFhirClient.UpdatePatient FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrUpdateFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.UpdatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.BaseUrl, patientID), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.DeletePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.DeletePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = []byte(readErr.Error())
		}

		deleteErr := errors.New(string(bodyBytes))
		c.Log.Error("patientFhirClient.DeletePatient FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(deleteErr),
		)
		return exceptions.ErrDeleteFHIRResource(deleteErr, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (c *patientFhirClient) CountPatients(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CountPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	params := url.Values{}
	params.Set(constvars.FhirParamSummary, constvars.FhirSummaryCount)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode()), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.CountPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.CountPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.CountPatients error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return 0, exceptions.ErrSearchFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErrorIssue := extractOutcomeError(resp.StatusCode, bodyBytes)
		c.Log.Error("patientFhirClient.CountPatients FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return 0, exceptions.ErrSearchFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	bundle := new(fhir_dto.FHIRBundle)
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("patientFhirClient.CountPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CountPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, bundle.Total),
	)
	return bundle.Total, nil
}

func (c *patientFhirClient) SearchPatients(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, params.Encode()),
	)

	patients, err := c.searchPatients(ctx, requestID, params.Encode())
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientFhirClient.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirClient) FindPatientsByRecency(ctx context.Context, count int) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientsByRecency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, count),
	)

	params := url.Values{}
	params.Set(constvars.FhirParamCount, strconv.Itoa(count))
	params.Set(constvars.FhirParamSort, constvars.FhirSortLastUpdatedDesc)

	patients, err := c.searchPatients(ctx, requestID, params.Encode())
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientFhirClient.FindPatientsByRecency succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirClient) FindPatientsByLastUpdated(ctx context.Context, lastUpdated string) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientsByLastUpdated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// The token is forwarded as received, an empty value included.
	params := url.Values{}
	params.Set(constvars.FhirParamLastUpdated, lastUpdated)

	patients, err := c.searchPatients(ctx, requestID, params.Encode())
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientFhirClient.FindPatientsByLastUpdated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirClient) searchPatients(ctx context.Context, requestID, rawQuery string) ([]fhir_dto.Patient, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, rawQuery), nil)
	if err != nil {
		c.Log.Error("patientFhirClient.searchPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.searchPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.searchPatients error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrSearchFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErrorIssue := extractOutcomeError(resp.StatusCode, bodyBytes)
		c.Log.Error("patientFhirClient.searchPatients FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fhirErrorIssue),
		)
		return nil, exceptions.ErrSearchFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
	}

	bundle := new(fhir_dto.FHIRBundle)
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("patientFhirClient.searchPatients error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	patients := make([]fhir_dto.Patient, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var patientFhir fhir_dto.Patient
		if err := json.Unmarshal(entry.Resource, &patientFhir); err != nil {
			c.Log.Error("patientFhirClient.searchPatients error unmarshaling entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		}
		patients = append(patients, patientFhir)
	}

	return patients, nil
}
