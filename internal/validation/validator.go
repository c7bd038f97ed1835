// Package validation evaluates declarative field rules on input structs.
//
// Inputs declare their constraints with go-playground/validator tags. Struct
// reports only the first failing field, translated to the typed error the
// caller registered for it, so the order of checks follows field declaration
// order.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Rules maps struct field names to the error reported when that field fails.
type Rules map[string]*domainerrors.BaseError

// Get returns the shared validator instance.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Struct validates s against its tags and returns the rule error of the first
// failing field, carrying the failed constraint as details.
func Struct(s any, rules Rules) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "failed to validate input")
	}

	first := fieldErrs[0]
	field := fieldName(first)
	if ruleErr, ok := rules[field]; ok {
		return ruleErr.WithDetails(describe(first))
	}

	return errors.Errorf("no rule registered for field %s: %s", field, describe(first))
}

// fieldName strips element indexes so "Aliases[2]" resolves to "Aliases".
func fieldName(fe validator.FieldError) string {
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", fe.Field(), fe.Param(), unit(fe))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", fe.Field(), fe.Param(), unit(fe))
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}

func unit(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array:
		return " items"
	default:
		return ""
	}
}
