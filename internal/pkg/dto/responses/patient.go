package responses

// Patient is the flattened per-request view of the upstream resource.
type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}

// PatientSummary carries the flattened full name only.
type PatientSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreatePatient struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdatePatient struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PatientCount struct {
	Count int `json:"count"`
}

type PatientList struct {
	Count   int              `json:"count"`
	Results []PatientSummary `json:"results"`
}

type RecentPatientList struct {
	Count   int       `json:"count"`
	Results []Patient `json:"results"`
}
