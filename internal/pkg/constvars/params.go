package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamName        = "name"
	URLQueryParamID          = "id"
	URLQueryParamBirthDate   = "birth_date"
	URLQueryParamLastUpdated = "lastUpdated"
)

const (
	FormFieldFirstName = "first_name"
	FormFieldLastName  = "last_name"
	FormFieldGender    = "gender"
	FormFieldBirthDate = "birth_date"
)
