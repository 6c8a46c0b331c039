package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
)

var nonDigits = regexp.MustCompile(`\D`)

// Validator wraps struct-tag validation with the custom rules the
// request DTOs rely on.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// IsValidPhone reports whether a normalized phone number has exactly
// ten digits.
func IsValidPhone(phone string) bool {
	return len(NormalizePhone(phone)) == 10
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("skill_level", validateSkillLevel)
	validate.RegisterValidation("phone10", validatePhone10)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateUserRole(fl validator.FieldLevel) bool {
	validRoles := []models.UserRole{
		models.RoleStudent,
		models.RoleHR,
	}

	value := fl.Field().String()
	for _, validRole := range validRoles {
		if string(validRole) == value {
			return true
		}
	}
	return false
}

func validateSkillLevel(fl validator.FieldLevel) bool {
	validLevels := []models.SkillLevel{
		models.SkillBeginner,
		models.SkillIntermediate,
		models.SkillAdvanced,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

func validatePhone10(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}
