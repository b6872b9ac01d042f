package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodySize ограничивает тело входящих JSON-запросов.
const MaxBodySize = 1 << 20

var ErrInvalidBody = errors.New("invalid request body")

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// DecodeBody читает ровно один JSON-объект не больше MaxBodySize.
// Неизвестные поля допускаются, данные после объекта считаются ошибкой.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after object", ErrInvalidBody)
	}
	return nil
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteValidationError пишет 400. Для ошибок валидатора заполняет поля,
// для остальных ошибок текст ошибки уходит в message.
func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{Message: "invalid request"}

	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		res.Fields = make(map[string]string, len(ve))
		for _, fe := range ve {
			res.Fields[fe.Field()] = fe.Tag()
		}
	case err != nil:
		res.Message = err.Error()
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}
