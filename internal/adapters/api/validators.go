package api

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherbot.app/pkg/validation"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags to gin's validator engine
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation("units", validateUnits)
	})
	return registerErr
}

func validateUnits(fl validator.FieldLevel) bool {
	return validation.IsValidUnits(strings.ToLower(fl.Field().String()))
}

// validationMessage turns binding errors into a single client-facing message
func validationMessage(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return "invalid request parameters"
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is required", field)
	case "units":
		return fmt.Sprintf("%s must be one of: metric, imperial", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
