package constvars

const (
	ResourcePatient          = "Patient"
	ResourceOperationOutcome = "OperationOutcome"
	ResourceBundle           = "Bundle"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)

// Search parameter names understood by the upstream FHIR server.
const (
	FhirParamName        = "name"
	FhirParamID          = "_id"
	FhirParamBirthDate   = "birthdate"
	FhirParamCount       = "_count"
	FhirParamSort        = "_sort"
	FhirParamSummary     = "_summary"
	FhirParamLastUpdated = "_lastUpdated"
)

const (
	FhirSummaryCount        = "count"
	FhirSortLastUpdatedDesc = "-_lastUpdated"
)

const (
	FhirRecentPatientsMaxCount = 50
)

const (
	FhirDateLayout = "2006-01-02"
)
