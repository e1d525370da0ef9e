package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Tag for fields holding a player class. Empty values pass; combine with
// "required" to demand one.
const tagPlayerClass = "playerclass"

var (
	validatorOnce sync.Once
	requestValid  *validator.Validate
)

// requestValidator reports field names by their JSON key so the error map
// matches the request body.
func requestValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return strings.ToLower(f.Name)
			}
			return name
		})
		_ = v.RegisterValidation(tagPlayerClass, func(fl validator.FieldLevel) bool {
			class := fl.Field().String()
			if class == "" {
				return true
			}
			_, ok := domain.CanonicalClass(class)
			return ok
		})
		requestValid = v
	})
	return requestValid
}

// ValidateRequest checks the validate tags on a decoded request body.
func ValidateRequest(req any) error {
	return requestValidator().Struct(req)
}

// FormatValidationError turns validation errors into a map keyed by JSON
// field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": ErrMsgInvalidRequestFormat}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ErrMsgFieldRequired
	case tagPlayerClass:
		return fmt.Sprintf(ErrMsgUnknownClass, strings.Join(domain.PlayerClasses, ", "))
	case "max":
		return fmt.Sprintf(ErrMsgFieldMax, fe.Param())
	case "min":
		return fmt.Sprintf(ErrMsgFieldMin, fe.Param())
	case "gt":
		return fmt.Sprintf(ErrMsgFieldGreater, fe.Param())
	default:
		return ErrMsgFieldInvalid
	}
}
