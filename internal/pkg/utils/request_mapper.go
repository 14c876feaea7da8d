package utils

import (
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/fhir_dto"
)

// BuildFhirPatient maps flat patient fields onto the upstream resource shape.
// The id is left empty for creates and set by the caller for replaces.
func BuildFhirPatient(firstName, lastName, gender, birthDate string) *fhir_dto.Patient {
	return &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Name: []fhir_dto.HumanName{
			{
				Given:  []string{firstName},
				Family: lastName,
			},
		},
		Gender:    gender,
		BirthDate: birthDate,
	}
}
