package errors

import "fmt"

// HTTPError carries a status code chosen by a delivery-layer error mapper.
type HTTPError struct {
	Code    int
	Message string
	// Data optionally carries structured detail, e.g. offending fields and
	// entity representations for a validation failure.
	Data any
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError without detail payload.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// NewHTTPErrorWithData creates an HTTPError carrying a detail payload.
func NewHTTPErrorWithData(code int, message string, data any) HTTPError {
	return HTTPError{Code: code, Message: message, Data: data}
}
