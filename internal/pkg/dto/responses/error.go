package responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
