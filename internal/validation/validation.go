// Package validation wraps go-playground/validator with the studio's custom tags:
//
//	isodate   string in YYYY-MM-DD form
//	slot      canonical start label, 11:00..19:00 every 30 minutes
//	halfhour  positive integer multiple of 30
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/pkg/types"
)

// ErrValidation wraps every failure returned by Struct
var ErrValidation = errors.New("validation failed")

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with custom tags registered
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names instead of Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		mustRegister(v, "isodate", isISODate)
		mustRegister(v, "slot", isCanonicalSlot)
		mustRegister(v, "halfhour", isHalfHourMultiple)

		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and returns a single readable error
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "isodate":
		return field + " must be a date in YYYY-MM-DD format"
	case "slot":
		return field + " must be a half-hour start between 11:00 and 19:00"
	case "halfhour":
		return field + " must be a positive multiple of 30"
	case "url":
		return field + " must be a valid URL"
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateFormat, fl.Field().String())
	return err == nil
}

func isCanonicalSlot(fl validator.FieldLevel) bool {
	return domain.IsCanonicalSlot(types.TimeString(fl.Field().String()))
}

func isHalfHourMultiple(fl validator.FieldLevel) bool {
	var n int64
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = fl.Field().Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = int64(fl.Field().Uint())
	default:
		return false
	}
	return n > 0 && n%domain.SlotStepMinutes == 0
}
