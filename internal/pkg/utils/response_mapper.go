package utils

import (
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/fhir_dto"
)

func ConvertPatientToResponse(patientFhir *fhir_dto.Patient) responses.Patient {
	return responses.Patient{
		ID:        patientFhir.ID,
		FirstName: GetFirstGivenName(patientFhir.Name),
		LastName:  GetFamilyName(patientFhir.Name),
		Gender:    patientFhir.Gender,
		BirthDate: patientFhir.BirthDate,
	}
}

func ConvertPatientToSummaryResponse(patientFhir *fhir_dto.Patient) responses.PatientSummary {
	return responses.PatientSummary{
		ID:   patientFhir.ID,
		Name: GetFullName(patientFhir.Name),
	}
}
