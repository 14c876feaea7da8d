package routers

import (
	"caregate-service/internal/app/services/core/patients"
	"caregate-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachPatientAPIRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/count", patientController.CountPatients)
	router.Get("/search", patientController.SearchPatients)
	router.Get("/list", patientController.ListPatientsByLastUpdated)
	router.Get("/recent", patientController.ListPatientsByRecency)

	patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)
	router.Get(patientIDPattern, patientController.GetPatientByID)
	router.Put(patientIDPattern, patientController.UpdatePatient)
	router.Delete(patientIDPattern, patientController.DeletePatient)
}

func attachPatientPageRoutes(router chi.Router, patientPageController *patients.PatientPageController) {
	router.Get("/", patientPageController.CreatePatientPage)
	router.Post("/", patientPageController.SubmitCreatePatient)

	router.Route("/patients", func(r chi.Router) {
		r.Get("/list", patientPageController.ListPatientsPage)
		r.Get("/search", patientPageController.SearchPatientsPage)

		patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)
		r.Route(patientIDPattern, func(r chi.Router) {
			r.Get("/update", patientPageController.UpdatePatientPage)
			r.Post("/update", patientPageController.SubmitUpdatePatient)
			r.Get("/delete", patientPageController.DeletePatientPage)
			r.Post("/delete", patientPageController.SubmitDeletePatient)
		})
	})
}
