package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the domain-specific validation rules
// on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("inquiry_status", isInquiryStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("action_type", isActionType); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

var inquiryStatuses = map[string]bool{
	"in-talks":  true,
	"confirmed": true,
	"canceled":  true,
}

var actionTypes = map[string]bool{
	"meeting":   true,
	"demo":      true,
	"call":      true,
	"follow-up": true,
	"note":      true,
	"other":     true,
}

func isInquiryStatus(fl validator.FieldLevel) bool {
	return inquiryStatuses[fl.Field().String()]
}

func isActionType(fl validator.FieldLevel) bool {
	return actionTypes[fl.Field().String()]
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}
