package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	PatientCreatedSuccess = "Patient created"
	PatientUpdatedSuccess = "Patient updated"
	PatientDeletedSuccess = "Patient deleted"
)
