package patients

import (
	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"caregate-service/internal/pkg/utils"
	"caregate-service/web"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const patientListPath = "/patients/list"

// PatientPageController serves the server-rendered pages. It talks to the
// upstream client directly and never writes audit entries: failed reads
// degrade to an empty view and form posts redirect to the list page
// regardless of the upstream outcome.
type PatientPageController struct {
	Log               *zap.Logger
	PatientFhirClient contracts.PatientFhirClient
}

func NewPatientPageController(logger *zap.Logger, patientFhirClient contracts.PatientFhirClient) *PatientPageController {
	return &PatientPageController{
		Log:               logger,
		PatientFhirClient: patientFhirClient,
	}
}

func (ctrl *PatientPageController) renderPage(w http.ResponseWriter, name string, data interface{}) {
	if err := web.Render(w, name, data); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err, name))
	}
}

func (ctrl *PatientPageController) CreatePatientPage(w http.ResponseWriter, r *http.Request) {
	ctrl.renderPage(w, web.TemplateIndex, nil)
}

func (ctrl *PatientPageController) SubmitCreatePatient(w http.ResponseWriter, r *http.Request) {
	patientFhir := utils.BuildFhirPatient(
		r.FormValue(constvars.FormFieldFirstName),
		r.FormValue(constvars.FormFieldLastName),
		r.FormValue(constvars.FormFieldGender),
		r.FormValue(constvars.FormFieldBirthDate),
	)

	if _, err := ctrl.PatientFhirClient.CreatePatient(r.Context(), patientFhir); err != nil {
		ctrl.Log.Warn("PatientPageController.SubmitCreatePatient upstream create failed",
			zap.Error(err),
		)
	}

	http.Redirect(w, r, patientListPath, http.StatusSeeOther)
}

func (ctrl *PatientPageController) ListPatientsPage(w http.ResponseWriter, r *http.Request) {
	patients := []responses.Patient{}

	patientsFhir, err := ctrl.PatientFhirClient.FindPatientsByRecency(r.Context(), constvars.FhirRecentPatientsMaxCount)
	if err != nil {
		ctrl.Log.Warn("PatientPageController.ListPatientsPage upstream fetch failed",
			zap.Error(err),
		)
	}
	for _, patientFhir := range patientsFhir {
		if len(patientFhir.Name) == 0 {
			continue
		}
		patients = append(patients, utils.ConvertPatientToResponse(&patientFhir))
	}

	ctrl.renderPage(w, web.TemplateListPatients, web.ListPatientsData{Patients: patients})
}

func (ctrl *PatientPageController) SearchPatientsPage(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get(constvars.URLQueryParamName)

	results := []responses.PatientSummary{}
	if name != "" {
		params := url.Values{}
		params.Set(constvars.FhirParamName, name)

		patientsFhir, err := ctrl.PatientFhirClient.SearchPatients(r.Context(), params)
		if err != nil {
			ctrl.Log.Warn("PatientPageController.SearchPatientsPage upstream search failed",
				zap.Error(err),
			)
		}
		for _, patientFhir := range patientsFhir {
			results = append(results, utils.ConvertPatientToSummaryResponse(&patientFhir))
		}
	}

	ctrl.renderPage(w, web.TemplateSearch, web.SearchData{Query: name, Results: results})
}

func (ctrl *PatientPageController) UpdatePatientPage(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	// Keep the id from the URL so the form still posts back when the
	// upstream read fails and the rest of the view stays empty.
	patient := responses.Patient{ID: patientID}
	patientFhir, err := ctrl.PatientFhirClient.FindPatientByID(r.Context(), patientID)
	if err != nil {
		ctrl.Log.Warn("PatientPageController.UpdatePatientPage upstream read failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	} else {
		patient = utils.ConvertPatientToResponse(patientFhir)
	}

	ctrl.renderPage(w, web.TemplateUpdate, web.PatientFormData{Patient: patient})
}

func (ctrl *PatientPageController) SubmitUpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	patientFhir := utils.BuildFhirPatient(
		r.FormValue(constvars.FormFieldFirstName),
		r.FormValue(constvars.FormFieldLastName),
		r.FormValue(constvars.FormFieldGender),
		r.FormValue(constvars.FormFieldBirthDate),
	)
	patientFhir.ID = patientID

	if _, err := ctrl.PatientFhirClient.UpdatePatient(r.Context(), patientFhir); err != nil {
		ctrl.Log.Warn("PatientPageController.SubmitUpdatePatient upstream update failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	http.Redirect(w, r, patientListPath, http.StatusSeeOther)
}

func (ctrl *PatientPageController) DeletePatientPage(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	patient := responses.Patient{ID: patientID}
	patientFhir, err := ctrl.PatientFhirClient.FindPatientByID(r.Context(), patientID)
	if err != nil {
		ctrl.Log.Warn("PatientPageController.DeletePatientPage upstream read failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	} else {
		patient = utils.ConvertPatientToResponse(patientFhir)
	}

	ctrl.renderPage(w, web.TemplateDelete, web.PatientFormData{Patient: patient})
}

func (ctrl *PatientPageController) SubmitDeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	if err := ctrl.PatientFhirClient.DeletePatient(r.Context(), patientID); err != nil {
		ctrl.Log.Warn("PatientPageController.SubmitDeletePatient upstream delete failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	http.Redirect(w, r, patientListPath, http.StatusSeeOther)
}
