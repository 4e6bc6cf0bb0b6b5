package validator

import (
	"regexp"

	"guest-order-api/core/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// timeOfDay matches HH:MM with an optional seconds component, 24h clock.
var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New()

	// start_time / end_time on time slot payloads
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timeOfDay.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return errors.NewAppError(errors.ErrInternalServer, "validation setup error", nil)
		}

		details := make([]map[string]string, 0)
		for _, fe := range err.(validator.ValidationErrors) {
			details = append(details, map[string]string{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		return errors.NewAppError(errors.ErrInvalidRequestData, "request validation failed", details)
	}
	return nil
}

var _ echo.Validator = (*CustomValidator)(nil)
