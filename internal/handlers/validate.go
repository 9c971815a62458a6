package handlers

import (
	"Reminder/internal/model"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках поля называются так же, как в JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		o, ok := f.Interface().(model.Optional[string])
		if !ok || !o.Valid {
			return ""
		}
		return o.Value
	}, model.Optional[string]{})
	_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		return isDueDate(fl.Field().String())
	})
	return v
}

// isDueDate принимает дату YYYY-MM-DD или момент времени RFC3339.
func isDueDate(s string) bool {
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// validateStruct переводит ошибки validator в ValidationError.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must not be empty"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "duedate":
		return fe.Field() + " must be a date (YYYY-MM-DD) or an RFC3339 timestamp"
	default:
		return fe.Field() + " is invalid"
	}
}
