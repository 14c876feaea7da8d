package exceptions

import (
	"caregate-service/internal/pkg/constvars"
	"fmt"
)

// rawClientMessage surfaces the underlying error text to the client, which is
// the gateway's contract for every upstream failure.
func rawClientMessage(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}
	return err.Error()
}

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		customError := BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
		customError.Fields = FieldValidationErrors(err)
		return customError
	}
	ErrSearchParamsRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSearchParamsRequired, constvars.ErrDevInvalidInput)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), constvars.ErrDevSendHTTPRequest)
	}

	// FHIR
	ErrCreateFHIRResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), fmt.Sprintf(constvars.ErrDevFhirCreateResource, resource))
	}
	ErrUpdateFHIRResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), fmt.Sprintf(constvars.ErrDevFhirUpdateResource, resource))
	}
	ErrGetFHIRResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), fmt.Sprintf(constvars.ErrDevFhirGetResource, resource))
	}
	ErrDeleteFHIRResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevFhirDeleteResource, resource))
	}
	ErrSearchFHIRResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), fmt.Sprintf(constvars.ErrDevFhirSearchResource, resource))
	}
	ErrFHIRResourceNotFound = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevFhirResourceNotFound, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, rawClientMessage(err), fmt.Sprintf(constvars.ErrDevFhirDecodeResponse, resource))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}

	// Default server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevDeadlineExceeded)
	}
	ErrRenderTemplate = func(err error, templateName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRenderTemplate, templateName))
	}
)
