package contracts

import (
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/fhir_dto"
	"context"
	"net/url"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error)
	GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.UpdatePatient, error)
	DeletePatient(ctx context.Context, patientID string) error
	CountPatients(ctx context.Context) (*responses.PatientCount, error)
	SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.PatientList, error)
	ListPatientsByRecency(ctx context.Context) (*responses.RecentPatientList, error)
	ListPatientsByLastUpdated(ctx context.Context, lastUpdated string) (*responses.PatientList, error)
}

type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	CountPatients(ctx context.Context) (int, error)
	SearchPatients(ctx context.Context, params url.Values) ([]fhir_dto.Patient, error)
	FindPatientsByRecency(ctx context.Context, count int) ([]fhir_dto.Patient, error)
	FindPatientsByLastUpdated(ctx context.Context, lastUpdated string) ([]fhir_dto.Patient, error)
}
