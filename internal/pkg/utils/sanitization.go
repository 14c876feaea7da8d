package utils

import (
	"caregate-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
}
