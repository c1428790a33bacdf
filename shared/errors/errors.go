package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// NotFound is used for absent resources AND ownership mismatches. The two
// cases must stay indistinguishable so an attacker cannot probe which ids
// exist under other accounts.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Validation(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func IsNotFound(err error) bool {
	e, ok := err.(*ErrorWithStatusCode)
	return ok && e.StatusCode == http.StatusNotFound
}
