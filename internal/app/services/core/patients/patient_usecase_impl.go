package patients

import (
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/app/models"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/requests"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/utils"
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientFhirClient  contracts.PatientFhirClient
	AuditLogRepository contracts.AuditLogRepository
	Log                *zap.Logger
}

func NewPatientUsecase(
	patientFhirClient contracts.PatientFhirClient,
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientFhirClient:  patientFhirClient,
			AuditLogRepository: auditLogRepository,
			Log:                logger,
		}
	})
	return patientUsecaseInstance
}

// appendAuditLog records a mutating outcome. A failed insert is logged and
// swallowed: the upstream outcome has already been decided.
func (uc *patientUsecase) appendAuditLog(ctx context.Context, operation models.AuditOperation, patientID string, status models.AuditStatus, message string) {
	auditLog := &models.AuditLog{
		Operation: operation,
		PatientID: patientID,
		Status:    status,
		Message:   message,
	}

	err := uc.AuditLogRepository.Insert(ctx, auditLog)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("patientUsecase.appendAuditLog error inserting audit log",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, string(operation)),
			zap.String(constvars.LoggingAuditStatusKey, string(status)),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientFhir := utils.BuildFhirPatient(request.FirstName, request.LastName, request.Gender, request.BirthDate)

	createdPatient, err := uc.PatientFhirClient.CreatePatient(ctx, patientFhir)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient on upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.appendAuditLog(ctx, models.AuditOperationCreate, "", models.AuditStatusFailed, exceptions.CauseText(err))
		return nil, err
	}

	uc.appendAuditLog(ctx, models.AuditOperationCreate, createdPatient.ID, models.AuditStatusSuccess, constvars.PatientCreatedSuccess)

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
	)
	return &responses.CreatePatient{
		ID:      createdPatient.ID,
		Message: constvars.PatientCreatedSuccess,
	}, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patientFhir, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetPatientByID error fetching patient from upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.ConvertPatientToResponse(patientFhir)

	uc.Log.Info("patientUsecase.GetPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
	)
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatient) (*responses.UpdatePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	patientFhir := utils.BuildFhirPatient(request.FirstName, request.LastName, request.Gender, request.BirthDate)
	patientFhir.ID = request.PatientID

	updatedPatient, err := uc.PatientFhirClient.UpdatePatient(ctx, patientFhir)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error replacing patient on upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		uc.appendAuditLog(ctx, models.AuditOperationUpdate, request.PatientID, models.AuditStatusFailed, exceptions.CauseText(err))
		return nil, err
	}

	uc.appendAuditLog(ctx, models.AuditOperationUpdate, updatedPatient.ID, models.AuditStatusSuccess, constvars.PatientUpdatedSuccess)

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, updatedPatient.ID),
	)
	return &responses.UpdatePatient{
		ID:      updatedPatient.ID,
		Status:  constvars.ResponseSuccess,
		Message: constvars.PatientUpdatedSuccess,
	}, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	err := uc.PatientFhirClient.DeletePatient(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.DeletePatient error deleting patient on upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		uc.appendAuditLog(ctx, models.AuditOperationDelete, patientID, models.AuditStatusFailed, exceptions.CauseText(err))
		return err
	}

	uc.appendAuditLog(ctx, models.AuditOperationDelete, patientID, models.AuditStatusSuccess, constvars.PatientDeletedSuccess)

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (uc *patientUsecase) CountPatients(ctx context.Context) (*responses.PatientCount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CountPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	total, err := uc.PatientFhirClient.CountPatients(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.CountPatients error counting patients on upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.CountPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, total),
	)
	return &responses.PatientCount{Count: total}, nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, request *requests.SearchPatients) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.SearchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Empty() {
		uc.Log.Warn("patientUsecase.SearchPatients called without any search parameter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSearchParamsRequired()
	}

	params := url.Values{}
	if request.Name != "" {
		params.Set(constvars.FhirParamName, request.Name)
	}
	if request.ID != "" {
		params.Set(constvars.FhirParamID, request.ID)
	}
	if request.BirthDate != "" {
		params.Set(constvars.FhirParamBirthDate, request.BirthDate)
	}

	patientsFhir, err := uc.PatientFhirClient.SearchPatients(ctx, params)
	if err != nil {
		uc.Log.Error("patientUsecase.SearchPatients error searching patients on upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if len(patientsFhir) == 0 {
		uc.Log.Info("patientUsecase.SearchPatients found no matching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrFHIRResourceNotFound(constvars.ResourcePatient)
	}

	results := make([]responses.PatientSummary, len(patientsFhir))
	for i := range patientsFhir {
		results[i] = utils.ConvertPatientToSummaryResponse(&patientsFhir[i])
	}

	uc.Log.Info("patientUsecase.SearchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(results)),
	)
	return &responses.PatientList{
		Count:   len(results),
		Results: results,
	}, nil
}

func (uc *patientUsecase) ListPatientsByRecency(ctx context.Context) (*responses.RecentPatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ListPatientsByRecency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientsFhir, err := uc.PatientFhirClient.FindPatientsByRecency(ctx, constvars.FhirRecentPatientsMaxCount)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatientsByRecency error fetching patients from upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	results := make([]responses.Patient, 0, len(patientsFhir))
	for i := range patientsFhir {
		// Entries without a name are skipped.
		if len(patientsFhir[i].Name) == 0 {
			continue
		}
		results = append(results, utils.ConvertPatientToResponse(&patientsFhir[i]))
	}

	uc.Log.Info("patientUsecase.ListPatientsByRecency succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(results)),
	)
	return &responses.RecentPatientList{
		Count:   len(results),
		Results: results,
	}, nil
}

func (uc *patientUsecase) ListPatientsByLastUpdated(ctx context.Context, lastUpdated string) (*responses.PatientList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ListPatientsByLastUpdated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientsFhir, err := uc.PatientFhirClient.FindPatientsByLastUpdated(ctx, lastUpdated)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatientsByLastUpdated error fetching patients from upstream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	results := make([]responses.PatientSummary, len(patientsFhir))
	for i := range patientsFhir {
		results[i] = utils.ConvertPatientToSummaryResponse(&patientsFhir[i])
	}

	uc.Log.Info("patientUsecase.ListPatientsByLastUpdated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(results)),
	)
	return &responses.PatientList{
		Count:   len(results),
		Results: results,
	}, nil
}
