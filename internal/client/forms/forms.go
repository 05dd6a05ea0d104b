// Package forms defines one tagged struct per mutation form and a single
// validation path returning field errors. Validation runs entirely
// client-side, before any network call; a failed form never submits.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The wire-format rules, verbatim from the UI: day 01-31, month 01-12,
// year 19xx/20xx, no calendar-validity check (31/02/2024 passes); hours
// 00-23, minutes 00-59.
var (
	dateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[012])/(19|20)\d\d$`)
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldError is one failed form field with its user-facing message.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Message }

// RegisterForm is the account-registration form. The password repeat is
// checked locally; no request is sent on mismatch.
type RegisterForm struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required"`
	VerifyPassword string `validate:"required,eqfield=Password"`
}

func (f RegisterForm) Validate() []FieldError { return run(f) }

// SignInForm is the credentials form.
type SignInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f SignInForm) Validate() []FieldError { return run(f) }

// UserForm is the profile create/modify form. Birthday is DD/MM/YYYY as
// typed; Location must be a committed picker value; at least one genre
// must be selected.
type UserForm struct {
	Username  string   `validate:"required"`
	FirstName string   `validate:"required"`
	LastName  string   `validate:"required"`
	Birthday  string   `validate:"required,ddmmyyyy"`
	Location  string   `validate:"required"`
	Genres    []string `validate:"min=1"`
}

func (f UserForm) Validate() []FieldError { return run(f) }

// EventForm is the event-creation form.
type EventForm struct {
	Title        string   `validate:"required"`
	Date         string   `validate:"required,ddmmyyyy"`
	Time         string   `validate:"required,hhmm"`
	Venue        string   `validate:"required"`
	StreetNumber string   `validate:"required"`
	StreetName   string   `validate:"required"`
	PostalCode   string   `validate:"required"`
	City         string   `validate:"required"`
	Country      string   `validate:"required"`
	Location     string   `validate:"required"`
	Type         string   `validate:"required"`
	Genres       []string `validate:"min=1"`
	URL          string   `validate:"omitempty,url"`
	Description  string   `validate:"required"`
}

func (f EventForm) Validate() []FieldError { return run(f) }

// Address assembles the single address string the backend stores.
func (f EventForm) Address() string {
	return fmt.Sprintf("%s %s, %s %s, %s",
		f.StreetNumber, f.StreetName, f.PostalCode, f.City, f.Country)
}

// EventFilterForm gates the filtered events query: a committed location
// is mandatory, type and genres are optional extra constraints.
type EventFilterForm struct {
	Location string   `validate:"required"`
	Type     string   `validate:"-"`
	Genres   []string `validate:"-"`
}

func (f EventFilterForm) Validate() []FieldError { return run(f) }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "ddmmyyyy", func(fl validator.FieldLevel) bool {
		return dateRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "hhmm", func(fl validator.FieldLevel) bool {
		return timeRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// run validates the form struct and maps validator errors to the exact
// messages the UI has always shown, in field-declaration order.
func run(form any) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// message picks the user-facing string for one failed field. Fields with
// bespoke legacy wording keep it regardless of which rule tripped; the
// rest get a generic per-tag message.
func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "Birthday":
		return "Please enter birthday in DD/MM/YYYY format"
	case "Date":
		return "Please enter date in DD/MM/YYYY format"
	case "Time":
		return "Please enter time in HH:MM format"
	case "Location":
		if strings.HasPrefix(fe.Namespace(), "EventFilterForm.") {
			return "Please select a location to filter events"
		}
		return "Please select a location"
	case "Genres":
		return "Please select at least one genre"
	case "VerifyPassword":
		if fe.Tag() == "eqfield" {
			return "Passwords do not match"
		}
	}

	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
