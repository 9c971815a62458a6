package handlers

import (
	"Reminder/internal/repo"
	"Reminder/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"go.uber.org/zap"
)

const msgInvalidRequest = "invalid request data"

// FieldError нарушение одного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError ошибка формы запроса, отдаётся клиенту как 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return msgInvalidRequest
	}
	return msgInvalidRequest + ": " + e.Fields[0].Field + " " + e.Fields[0].Message
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

type errorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса в dst. Любая ошибка разбора это ValidationError.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return fieldError("body", "request body is required")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fieldError(typeErr.Field, "must be a "+jsonKind(typeErr.Type.Kind()))
	default:
		return fieldError("body", "malformed JSON")
	}
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "number"
	}
}

// writeError переводит ошибку в HTTP ответ. Подробности ошибок хранилища наружу не уходят.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, notFound string, kv ...any) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warnw(op+": invalid request", append(kv, "error", err)...)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest, Details: verr.Fields})
	case errors.Is(err, repo.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound})
	case errors.Is(err, service.ErrNoImage):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "image not found"})
	default:
		logger.Errorw(op+": storage error", append(kv, "error", err)...)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// requireQuery возвращает обязательный query-параметр.
func requireQuery(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", fieldError(name, name+" is required")
	}
	return v, nil
}

// emptyAsNil пустые строки в необязательных полях при создании считаются отсутствующими.
func emptyAsNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
