package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/RoGogDBD/menucat/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse описывает тело ошибки с человекочитаемым сообщением.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse описывает тело подтверждения операции.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError описывает нарушение правила валидации одного поля.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value any    `json:"value,omitempty"`
}

// ValidationErrorResponse описывает тело ответа 422.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeStoreError транслирует ошибки хранилища: ErrNotFound в 404,
// остальное в 500 с текстом ошибки.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, repository.ErrNotFound.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// writeValidationError отдает 422 с пополевой детализацией.
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	detail := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		detail = append(detail, FieldError{
			Field: fe.Field(),
			Rule:  rule,
			Value: fe.Value(),
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: detail})
}
