package request

import (
	"venuebook/internal/domain/listing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidateHHMM backs the "hhmm" binding tag: a 24h wall-clock time such as 09:30.
func ValidateHHMM(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := listing.ParseClockTime(s)
	return err == nil
}

// RegisterValidators installs the custom tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hhmm", ValidateHHMM)
}
