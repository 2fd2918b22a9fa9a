package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultErrorMessage = "something went wrong"

// ServerError carries the code and message reported for a failed message post.
type ServerError struct {
	Code    int
	Message string
	cause   error
}

func NewServerError[T ~int](code T, msg string, err error) *ServerError {
	return &ServerError{
		Code:    int(code),
		Message: msg,
		cause:   err,
	}
}

func (s *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", s.Message, s.cause)
}

func (s *ServerError) Unwrap() error {
	return s.cause
}

// ProcessServerError returns the code, the public message and the full details of err.
// Unknown errors become 500 with a generic message.
func ProcessServerError(err error) (code int, msg string, details string) {
	if errSrv := new(ServerError); errors.As(err, &errSrv) {
		return errSrv.Code, errSrv.Message, errSrv.Error()
	}

	if errHTTP := new(echo.HTTPError); errors.As(err, &errHTTP) {
		msg, ok := errHTTP.Message.(string)
		if !ok {
			msg = http.StatusText(errHTTP.Code)
		}
		return errHTTP.Code, msg, errHTTP.Error()
	}

	return http.StatusInternalServerError, defaultErrorMessage, err.Error()
}
