package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/academiq/academiq/internal/domain/model"
)

// Human-readable messages keyed later into the i18n catalog by their English
// source text, gettext style.
const (
	msgRequired      = "This field is required."
	msgInvalidEmail  = "Enter a valid email address."
	msgInvalidPhone  = "Enter a valid phone number."
	msgInvalidChoice = "Select a valid choice."
	msgInvalidValue  = "Enter a valid value."
)

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ContactSubmission carries raw contact form values into validation.
type ContactSubmission struct {
	FullName    string `form:"full_name" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"omitempty,phone"`
	Subject     string `form:"subject" validate:"required,max=200"`
	ServiceType string `form:"service_type" validate:"required,oneof=general thesis review statistics translation formatting"`
	Message     string `form:"message" validate:"required"`
}

// OrderSubmission carries raw order form values into validation. Unlike the
// contact form the phone is mandatory and a general inquiry is not a valid
// service choice.
type OrderSubmission struct {
	FullName    string `form:"full_name" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"required,phone"`
	ServiceType string `form:"service_type" validate:"required,oneof=thesis review statistics translation formatting"`
	Message     string `form:"message" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the HTML form field name rather than the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register phone validation: %v", err))
	}

	return v
}

// ValidateContact checks a contact submission and returns nil when it is
// acceptable. Validation is all-or-nothing: every failing field is reported.
func ValidateContact(sub ContactSubmission) model.ValidationErrors {
	return validateStruct(sub)
}

// ValidateOrder checks an order submission, excluding the attachment which is
// validated separately and merged by the workflow.
func ValidateOrder(sub OrderSubmission) model.ValidationErrors {
	return validateStruct(sub)
}

func validateStruct(s any) model.ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return model.ValidationErrors{"": {msgInvalidValue}}
	}

	out := model.ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return msgInvalidEmail
	case "phone":
		return msgInvalidPhone
	case "oneof":
		return msgInvalidChoice
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	}
	return msgInvalidValue
}
