package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"len":      "must be %s characters long",
	"numeric":  "must be a number",
	"datetime": "must be a valid date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientSearchParamsRequired          = "at least one of name, id or birth_date is required"
	ErrClientServerLongRespond             = "server took too long to respond"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevServerProcess     = "error while server processing the request"
	ErrDevDeadlineExceeded  = "server deadline exceeded while processing the request"
	ErrDevRenderTemplate    = "failed to render HTML template %s"

	ErrDevFhirCreateResource   = "failed to create FHIR %s on upstream service"
	ErrDevFhirUpdateResource   = "failed to update FHIR %s on upstream service"
	ErrDevFhirGetResource      = "failed to get FHIR %s from upstream service"
	ErrDevFhirDeleteResource   = "failed to delete FHIR %s on upstream service"
	ErrDevFhirSearchResource   = "failed to search FHIR %s on upstream service"
	ErrDevFhirDecodeResponse   = "failed to decode FHIR %s response from upstream service"
	ErrDevFhirResourceNotFound = "FHIR %s not found on upstream service"

	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
)
