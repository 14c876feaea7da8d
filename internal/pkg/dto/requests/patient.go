package requests

type CreatePatient struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=male female other unknown"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type UpdatePatient struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=male female other unknown"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	PatientID string `json:"-"`
}

type SearchPatients struct {
	Name      string
	ID        string
	BirthDate string
}

func (r *SearchPatients) Empty() bool {
	return r.Name == "" && r.ID == "" && r.BirthDate == ""
}
