package validator

import (
	"reflect"
	"strings"

	"voter-pledge-admin/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their json names, e.g. "pledge.mayor" or "roles[1]".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("pledge_choice", func(fl validator.FieldLevel) bool {
		return entity.PledgeChoice(fl.Field().String()).Valid()
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := fieldPath(e.Namespace())
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				if e.Kind() == reflect.Slice {
					errors[field] = field + " must have at least " + e.Param() + " item(s)"
				} else {
					errors[field] = field + " must be at least " + e.Param() + " characters"
				}
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "eqfield":
				errors[field] = field + " confirmation does not match"
			case "role":
				errors[field] = field + " is not a valid role"
			case "pledge_choice":
				errors[field] = field + " must be one of PNC, MDP, UN, NOT VOTING"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
