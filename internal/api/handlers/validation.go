package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal: a non-negative plain decimal string with at most two
	// fractional digits, such as "2499.90". Exponent forms are rejected.
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if strings.ContainsAny(s, "eE") {
			return false
		}
		d, err := decimal.NewFromString(s)
		return err == nil && !d.IsNegative() && d.Exponent() >= -2
	})

	return v
}

type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError reports every field that broke a validation rule.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s failed %s", v.Field, v.Rule))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	vErr := &ValidationError{}
	for _, fe := range fieldErrs {
		vErr.Violations = append(vErr.Violations, Violation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
		})
	}
	return vErr
}
