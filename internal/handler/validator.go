package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/arenatools/questplanner/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for the closed quest-type and color sets
	_ = v.RegisterValidation("quest_type", validateQuestType)
	_ = v.RegisterValidation("mana_color", validateManaColor)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "quest_type":
			errs[field] = "Invalid quest type"
		case "mana_color":
			errs[field] = "Invalid color"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "dive":
			errs[field] = "Contains an invalid entry"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for quest type
func validateQuestType(fl validator.FieldLevel) bool {
	t := domain.QuestType(fl.Field().String())
	// Allow empty if not required (handled by 'required' tag if needed)
	if t == "" {
		return true
	}
	return t.IsValid()
}

// Custom validation function for color tags
func validateManaColor(fl validator.FieldLevel) bool {
	c := domain.Color(fl.Field().String())
	if c == "" {
		return true
	}
	return c.IsValid()
}
