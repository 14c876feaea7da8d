package utils

import (
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/dto/responses"
	"caregate-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildNoContentResponse(w http.ResponseWriter) {
	w.WriteHeader(constvars.StatusNoContent)
}

// BuildErrorResponse maps a CustomError to its flat body: {errors} when the
// error carries field messages, {error} otherwise.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
		if len(customErr.Fields) > 0 {
			BuildJSONResponse(w, code, responses.ValidationErrorResponse{Errors: customErr.Fields})
			return
		}
	} else {
		log.Error(err.Error())
	}

	BuildJSONResponse(w, code, responses.ErrorResponse{Error: clientMessage})
}
