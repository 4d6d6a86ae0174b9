package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "gatekeeper/internal/domain/errors"
)

func validationIssues(t *testing.T, err error) []domainerrors.FieldIssue {
	t.Helper()

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	return vErr.Issues
}

func TestRequestValidator_ValidCredentials(t *testing.T) {
	v := New()

	cases := []Credentials{
		{Email: "user@example.com", Password: "secret1"},
		{Email: "user@example.com", Password: "123456"},               // exactly 6
		{Email: "user@example.com", Password: strings.Repeat("a", 20)}, // exactly 20
		{Email: "first.last+tag@sub.example.co.uk", Password: "secret1"},
	}

	for _, creds := range cases {
		assert.NoError(t, v.Validate(&creds), "email: %s", creds.Email)
	}
}

func TestRequestValidator_NormalizesEmail(t *testing.T) {
	v := New()

	creds := &Credentials{Email: "  User@Example.COM \t", Password: "secret1"}
	require.NoError(t, v.Validate(creds))

	assert.Equal(t, "user@example.com", creds.Email)
	// Password is never touched; whitespace and case are significant.
	assert.Equal(t, "secret1", creds.Password)
}

func TestRequestValidator_PasswordLengthBounds(t *testing.T) {
	v := New()

	cases := []struct {
		name     string
		password string
		message  string
	}{
		{name: "one below minimum", password: "12345", message: "must be at least 6 characters"},
		{name: "one above maximum", password: strings.Repeat("a", 21), message: "must be at most 20 characters"},
		{name: "missing", password: "", message: "is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&Credentials{Email: "user@example.com", Password: tc.password})
			issues := validationIssues(t, err)

			require.Len(t, issues, 1)
			assert.Equal(t, "password", issues[0].Field)
			assert.Equal(t, tc.message, issues[0].Message)
		})
	}
}

func TestRequestValidator_EmailFormat(t *testing.T) {
	v := New()

	for _, email := range []string{"not-an-email", "user@", "@example.com", "user example.com"} {
		err := v.Validate(&Credentials{Email: email, Password: "secret1"})
		issues := validationIssues(t, err)

		require.Len(t, issues, 1, "email: %s", email)
		assert.Equal(t, "email", issues[0].Field)
		assert.Equal(t, "must be a valid email address", issues[0].Message)
	}
}

func TestRequestValidator_MultipleIssuesInFieldOrder(t *testing.T) {
	v := New()

	err := v.Validate(&Credentials{})
	issues := validationIssues(t, err)

	// One issue per failing field, in struct declaration order.
	require.Len(t, issues, 2)
	assert.Equal(t, "email", issues[0].Field)
	assert.Equal(t, "is required", issues[0].Message)
	assert.Equal(t, "password", issues[1].Field)
	assert.Equal(t, "is required", issues[1].Message)
}

func TestRequestValidator_ValidationErrorShape(t *testing.T) {
	v := New()

	err := v.Validate(&Credentials{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	assert.Equal(t, 400, appErr.HTTPCode())
	// Empty code means the classifier mints a fresh one per response.
	assert.Empty(t, appErr.ErrorCode())
	assert.Equal(t, "Validation failed", appErr.Message())
	assert.NotNil(t, appErr.Details())
}

func TestBindError(t *testing.T) {
	err := BindError(assert.AnError)

	issues := validationIssues(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "body", issues[0].Field)
	assert.Equal(t, "malformed request body", issues[0].Message)
}
