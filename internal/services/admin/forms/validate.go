package forms

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	mustRegister(v, "positive", isPositiveNumber)
	mustRegister(v, "maxamount", isAtMostAmount)
	v.RegisterStructValidation(validatePayoutMethod, PayoutForm{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

// decimalPattern is plain decimal notation: no exponent, hex, Inf or NaN.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// parseAmount parses a user-entered decimal amount.
func parseAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if !decimalPattern.MatchString(raw) {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

func isPositiveNumber(fl validator.FieldLevel) bool {
	value, ok := parseAmount(fl.Field().String())
	return ok && value > 0
}

func isAtMostAmount(fl validator.FieldLevel) bool {
	limit, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	value, ok := parseAmount(fl.Field().String())
	return ok && value <= limit
}

// Errors maps a form field name to the message key of its first failure.
type Errors map[string]string

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message key for field, or "".
func (e Errors) Get(field string) string {
	return e[field]
}

// OK reports whether validation passed.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Add records key for field unless the field already failed.
func (e Errors) Add(field string, key string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = key
}

// fallbackMessage is used for rules a form did not map explicitly.
const fallbackMessage = "validation.invalid"

// check validates form and translates failures through messages, keyed by
// "<field>.<tag>".
func check(form any, messages map[string]string) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		errs.Add("_form", fallbackMessage)
		return errs
	}
	for _, fieldErr := range fieldErrors {
		key, ok := messages[fieldErr.Field()+"."+fieldErr.Tag()]
		if !ok {
			key = fallbackMessage
		}
		errs.Add(fieldErr.Field(), key)
	}
	return errs
}
