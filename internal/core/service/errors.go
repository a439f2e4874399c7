package service

import (
	"fmt"
	"net/http"
)

// ServiceError carries the HTTP status and message a handler should answer
// with. Fields holds per-field validation problems.
type ServiceError struct {
	Code    int
	Message string
	Fields  map[string]string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func notFound(resource string, id int64) *ServiceError {
	return &ServiceError{Code: http.StatusNotFound, Message: fmt.Sprintf("%s %d not found", resource, id)}
}

func invalid(message string, fields map[string]string) *ServiceError {
	return &ServiceError{Code: http.StatusUnprocessableEntity, Message: message, Fields: fields}
}
