package fhir_dto

type Patient struct {
	ID           string      `json:"id,omitempty"`
	ResourceType string      `json:"resourceType,omitempty"`
	Meta         *Meta       `json:"meta,omitempty"`
	Name         []HumanName `json:"name,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	BirthDate    string      `json:"birthDate,omitempty"`
}
