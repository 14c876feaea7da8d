package utils

import (
	"caregate-service/internal/pkg/fhir_dto"
	"strings"
)

// GetFullName flattens the first name element: given parts joined by single
// spaces, then the family name, trimmed. Missing fields legitimately yield "".
func GetFullName(names []fhir_dto.HumanName) string {
	var name fhir_dto.HumanName
	if len(names) > 0 {
		name = names[0]
	}
	fullName := strings.Join(name.Given, " ") + " " + name.Family
	return strings.TrimSpace(fullName)
}

func GetFirstGivenName(names []fhir_dto.HumanName) string {
	if len(names) == 0 || len(names[0].Given) == 0 {
		return ""
	}
	return names[0].Given[0]
}

func GetFamilyName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}
	return names[0].Family
}
