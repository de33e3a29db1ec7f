package newsportal

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/daniilsolovey/newsroom/internal/slug"
	"github.com/go-playground/validator/v10"
)

// Validator checks create payloads.
type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})

	// report json field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validator: validate}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	return NewValidationError(verrs)
}

// ValidationError maps field names to messages.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func NewValidationError(errs validator.ValidationErrors) ValidationError {
	ve := ValidationError{Errors: make(map[string]string, len(errs))}
	for _, e := range errs {
		ve.Errors[e.Field()] = message(e)
	}
	return ve
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	messages := make([]string, len(fields))
	for i, f := range fields {
		messages[i] = fmt.Sprintf("%s: %s", f, e.Errors[f])
	}
	return strings.Join(messages, "; ")
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "slug":
		return "must contain only lowercase letters, numbers, hyphens or underscores"
	}
	return fmt.Sprintf("failed on %s", e.Tag())
}
