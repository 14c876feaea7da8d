package exceptions

import (
	"caregate-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int
	ClientMessage string
	DevMessage    string
	Fields        map[string]string
	Location      Location
	Err           error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// CauseText returns the underlying failure text, which audit entries record
// even when the client-facing message differs.
func CauseText(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		if customErr.Err != nil {
			return customErr.Err.Error()
		}
		return customErr.ClientMessage
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// BuildNewCustomError is called through the Err* constructor variables; the
// captured location is the constructor's call site.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		Err:           err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
