package models

import "net/http"

// ErrorWithStatus - ошибка с HTTP-статусом, прерывает агрегатную валидацию
type ErrorWithStatus struct {
	Status  int
	Message string
}

func (e *ErrorWithStatus) Error() string {
	return e.Message
}

func NewErrorWithStatus(status int, message string) *ErrorWithStatus {
	return &ErrorWithStatus{Status: status, Message: message}
}

func NewUnauthorizedError(message string) *ErrorWithStatus {
	return &ErrorWithStatus{Status: http.StatusUnauthorized, Message: message}
}

func NewForbiddenError(message string) *ErrorWithStatus {
	return &ErrorWithStatus{Status: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *ErrorWithStatus {
	return &ErrorWithStatus{Status: http.StatusNotFound, Message: message}
}

func NewBadRequestError(message string) *ErrorWithStatus {
	return &ErrorWithStatus{Status: http.StatusBadRequest, Message: message}
}

// EntityError - агрегат ошибок валидации по полям, отдаётся как 422
type EntityError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (e *EntityError) Error() string {
	return e.Message
}

func NewEntityError(errors map[string]string) *EntityError {
	return &EntityError{Message: "Validation error", Errors: errors}
}
