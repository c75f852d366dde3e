package validator

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'future': the field must be a time strictly after now. Used for
	// package pickup dates.
	mustRegister("future", validateFuture)
}

func validateFuture(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if value.IsZero() {
		return true // 'required' handles empty values
	}
	return value.After(time.Now())
}
