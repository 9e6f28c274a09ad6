package validation

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"todoweb/internal/core/domain"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	addCustomTranslations()
}

func addCustomTranslations() {
	Validator.RegisterTranslation("required", Translator, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is required", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", fieldLabel(fe.Field()))
		return t
	})

	Validator.RegisterTranslation("max", Translator, func(ut ut.Translator) error {
		return ut.Add("max", "{0} must be at most {1} characters", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", fieldLabel(fe.Field()), fe.Param())
		return t
	})
}

func fieldLabel(field string) string {
	labels := map[string]string{
		"Title":       "Title",
		"Description": "Description",
		"DueDate":     "Due date",
		"Completed":   "Completed",
	}

	if label, ok := labels[field]; ok {
		return label
	}

	return field
}

// Struct validates v and converts any constraint failures into
// domain.ValidationErrors with form-ready messages. Returns nil when valid.
func Struct(v any) error {
	err := Validator.Struct(v)

	if err == nil {
		return nil
	}

	if verrs := FormatValidationErrors(err); len(verrs) > 0 {
		return verrs
	}

	return err
}

func FormatValidationErrors(err error) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			errs = append(errs, domain.FieldError{
				Field:   strings.ToLower(fieldError.Field()),
				Message: fieldError.Translate(Translator),
			})
		}
	}

	return errs
}
