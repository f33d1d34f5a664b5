package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"twitterclone/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Response - конверт успешного ответа
type Response struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func WriteJSON(w http.ResponseWriter, message string, result interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(Response{Message: message, Result: result})
}

// HandleError - перевод типизированных ошибок в HTTP-статусы:
// ошибки валидации - 422, ошибки со статусом - как есть, остальное - 500
func HandleError(w http.ResponseWriter, err error) {
	var entityErr *models.EntityError
	if errors.As(err, &entityErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{
			Message: entityErr.Message,
			Errors:  entityErr.Errors,
		})
		return
	}

	var statusErr *models.ErrorWithStatus
	if errors.As(err, &statusErr) {
		WriteError(w, statusErr.Message, statusErr.Status)
		return
	}

	WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
}

// validationError - ошибки validator сворачиваются в карту поле -> сообщение
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
		fieldErrors[field] = fmt.Sprintf("не прошло проверку %s", fieldErr.Tag())
	}

	return models.NewEntityError(fieldErrors)
}
