// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/danielhkuo/contractflow/currency"
)

// Input is a raw form value. It decodes from a JSON string, number or null.
// Strings reach the rules unchanged ("Rs 1,000.00"); numbers are expanded to
// plain decimal text, so 1e3 becomes "1000".
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*in = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Input(strings.TrimSpace(s))
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("unexpected JSON value %s", string(data))
	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return fmt.Errorf("unexpected JSON value %s", string(data))
		}
		*in = Input(d.String())
	}
	return nil
}

// Form is implemented by every entity form. Record must only be called on a
// form that passed Validate.
type Form[T any] interface {
	Record() T
}

// FieldError reports the first field that failed validation.
type FieldError struct {
	Field   string
	Label   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		mustRegister(v, "lkr", isAmount)
		mustRegister(v, "nonneg", isNonNegative)
		mustRegister(v, "integer", isInteger)
		mustRegister(v, "percent", isPercent)
		mustRegister(v, "id", isID)
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Validate checks a form struct and returns a *FieldError for the first
// failing field in declaration order, or nil.
func Validate(form any) error {
	err := engine().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	label := labelFor(form, fe.StructField())
	return &FieldError{
		Field:   fe.Field(),
		Label:   label,
		Message: message(label, fe),
	}
}

func labelFor(form any, structField string) string {
	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sf, ok := t.FieldByName(structField); ok {
		if label := sf.Tag.Get("label"); label != "" {
			return label
		}
	}
	return structField
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "lkr":
		return label + " must be a valid number"
	case "integer":
		return label + " must be a whole number"
	case "nonneg":
		return label + " must be greater than or equal to 0"
	case "percent":
		return label + " must be between 0 and 100"
	case "id":
		return label + " must reference a valid record"
	case "datetime":
		return label + " must be a valid date (YYYY-MM-DD)"
	case "oneof":
		return label + " must be one of: " + fe.Param()
	default:
		return label + " is invalid"
	}
}

func number(fl validator.FieldLevel) (decimal.Decimal, bool) {
	a, err := currency.ParseAmount(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return a.Decimal, true
}

func isAmount(fl validator.FieldLevel) bool {
	_, ok := number(fl)
	return ok
}

func isNonNegative(fl validator.FieldLevel) bool {
	d, ok := number(fl)
	return ok && !d.IsNegative()
}

func isInteger(fl validator.FieldLevel) bool {
	d, ok := number(fl)
	return ok && d.IsInteger()
}

func isPercent(fl validator.FieldLevel) bool {
	d, ok := number(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

func isID(fl validator.FieldLevel) bool {
	id, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
	return err == nil && id > 0
}
