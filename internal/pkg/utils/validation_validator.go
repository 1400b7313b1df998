package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("pathway", validatePathway)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePathway(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "onboarding", "periodic", "emergency", "clinical":
		return true
	}
	return false
}
