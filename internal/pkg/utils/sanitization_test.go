package utils

import (
	"caregate-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreatePatientRequest(t *testing.T) {
	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.CreatePatient{
			FirstName: "  Jane  ",
			LastName:  "  Doe  ",
			Gender:    "female",
			BirthDate: "1990-05-01",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, "Jane", request.FirstName, "first name should be trimmed")
		assert.Equal(t, "Doe", request.LastName, "last name should be trimmed")
	})

	t.Run("Gender And Birth Date Untouched", func(t *testing.T) {
		request := &requests.CreatePatient{
			FirstName: "Jane",
			LastName:  "Doe",
			Gender:    " female ",
			BirthDate: " 1990-05-01 ",
		}

		SanitizeCreatePatientRequest(request)

		assert.Equal(t, " female ", request.Gender, "coded fields are validated as sent")
		assert.Equal(t, " 1990-05-01 ", request.BirthDate, "coded fields are validated as sent")
	})
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	t.Run("Name Sanitization", func(t *testing.T) {
		request := &requests.UpdatePatient{
			FirstName: "  Janet  ",
			LastName:  "  Doe  ",
			Gender:    "female",
			BirthDate: "1990-05-01",
			PatientID: "pat-1",
		}

		SanitizeUpdatePatientRequest(request)

		assert.Equal(t, "Janet", request.FirstName, "first name should be trimmed")
		assert.Equal(t, "Doe", request.LastName, "last name should be trimmed")
		assert.Equal(t, "pat-1", request.PatientID, "patient id should be untouched")
	})
}
