// Package validator implements request payload validation on top of
// go-playground/validator, producing ordered per-field issues the response
// classifier passes through to the client untouched.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/errors"
)

// Credentials is the signup/login payload. Signup and login share one schema:
// a syntactically valid email and a password of 6 to 20 characters.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

// Normalize trims and lowercases the email. It runs as part of validation so
// every downstream component only ever sees the canonical form.
func (c *Credentials) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. It never returns transport errors for bad input, only
// structured domain validation errors.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate normalizes then schema-checks the payload. On failure it returns a
// domain ValidationError carrying one issue per failed field, in declaration
// order.
func (v *RequestValidator) Validate(i any) error {
	if creds, ok := i.(*Credentials); ok {
		creds.Normalize()
	}

	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-validation failure (e.g. a nil payload); still surface it as a
		// structured issue rather than a transport error.
		return domainerrors.NewValidationError(domainerrors.FieldIssue{
			Field:   "body",
			Message: "malformed request payload",
		})
	}

	issues := make([]domainerrors.FieldIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, domainerrors.FieldIssue{
			Field:   strings.ToLower(fe.Field()),
			Message: issueMessage(fe),
		})
	}

	return domainerrors.NewValidationError(issues...)
}

// BindError converts an echo binding failure (malformed JSON, wrong types)
// into the same structured shape validation failures use.
func BindError(error) error {
	return domainerrors.NewValidationError(domainerrors.FieldIssue{
		Field:   "body",
		Message: "malformed request body",
	})
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
