package dto

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding validations used by the
// request DTOs on gin's validator engine. Call once during startup.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dataurl", validateDataURL)
}

// validateDataURL accepts the data URLs the dashboard's logo uploader
// produces (e.g. "data:image/png;base64,...").
func validateDataURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !strings.HasPrefix(value, "data:") {
		return false
	}
	return strings.Contains(value, ",")
}
