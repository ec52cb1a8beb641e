package server

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"droscher.com/RestaurantRandomizer/pkg/model"
)

func newValidator(regions []string) *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = validate.RegisterValidation("pricetier", func(fl validator.FieldLevel) bool {
		return model.IsPriceTier(fl.Field().String())
	})
	_ = validate.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return slices.Contains(regions, fl.Field().String())
	})

	return validate
}

// validationMessage turns validator failures into one client-facing error.
func validationMessage(err error, regions []string) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return invalid("%s", err.Error())
	}

	var (
		missing  []string
		problems []string
	)

	for _, fieldError := range fieldErrors {
		switch fieldError.Tag() {
		case "required":
			missing = append(missing, fieldError.Field())
		case "pricetier":
			problems = append(problems, "price must be one of "+strings.Join(model.PriceTiers, ", "))
		case "region":
			problems = append(problems, "county must be one of "+strings.Join(regions, ", "))
		default:
			problems = append(problems, fieldError.Field()+" is invalid")
		}
	}

	if len(missing) > 0 {
		problems = append([]string{"missing required fields: " + strings.Join(missing, ", ")}, problems...)
	}

	return invalid("%s", strings.Join(problems, "; "))
}
