package web

import (
	"bytes"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/responses"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	TemplateIndex        = "index.html"
	TemplateListPatients = "list_patients.html"
	TemplateSearch       = "search.html"
	TemplateUpdate       = "update.html"
	TemplateDelete       = "delete.html"
)

type ListPatientsData struct {
	Patients []responses.Patient
}

type SearchData struct {
	Query   string
	Results []responses.PatientSummary
}

type PatientFormData struct {
	Patient responses.Patient
}

// Render executes the named template into a buffer first so a template
// failure never leaves a partially written page behind.
func Render(w http.ResponseWriter, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	_, err := buf.WriteTo(w)
	return err
}
