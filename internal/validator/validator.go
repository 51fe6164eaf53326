package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	ClockLayout = "15:04"

	ErrRequired   = "is required"
	ErrMinLength  = "must be at least %s"
	ErrMaxLength  = "must be at most %s"
	ErrUnique     = "must not contain duplicates"
	ErrClock      = "must be a time of day in HH:MM format"
	ErrRating     = "must be between 0 and 10"
	ErrPeriodKey  = "must be a lowercase identifier"
	ErrSortColumn = "is not a sortable column"
	ErrInvalid    = "is invalid"
)

var (
	maxRating    = decimal.NewFromInt(10)
	periodKeyRgx = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("clock", validateClock)
	validator.RegisterValidation("rating", validateRating)
	validator.RegisterValidation("period_key", validatePeriodKey)

	return validator
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse(ClockLayout, fl.Field().String())
	return err == nil
}

func validateRating(fl validator.FieldLevel) bool {
	rating, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return !rating.IsNegative() && rating.LessThanOrEqual(maxRating)
}

func validatePeriodKey(fl validator.FieldLevel) bool {
	return periodKeyRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min", "gte":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max", "lte":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "unique":
		return ErrUnique
	case "clock":
		return ErrClock
	case "rating":
		return ErrRating
	case "period_key":
		return ErrPeriodKey
	case "oneof":
		return ErrSortColumn
	default:
		return ErrInvalid
	}
}
