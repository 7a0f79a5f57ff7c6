package webutil

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Ameer1428/ElevateU/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	// Report field names as their json tags, so error messages match the
	// wire format clients actually send.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}
}

// ValidateStruct runs the validator tags on s and converts the first failure
// into an AppError suitable for HandleError.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return model.NewAppError("VALIDATION_ERROR", "Input validation failed.", "", model.ErrInvalidInput)
	}

	fieldErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		fieldErr.Translate(translator),
		fieldErr.Field(),
		model.ErrInvalidInput,
	)
}
