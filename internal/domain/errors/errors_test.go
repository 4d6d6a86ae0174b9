package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/errors"
)

func TestBaseError_IsMatchesDerivedCopies(t *testing.T) {
	derived := ErrDuplicateEntry.WithDetails(map[string]any{"field": "email"})

	assert.True(t, errors.Is(derived, ErrDuplicateEntry))
	assert.True(t, errors.Is(derived.WrapMessage("account already exists"), ErrDuplicateEntry))
	assert.False(t, errors.Is(derived, ErrForeignKeyViolation))
	assert.False(t, errors.Is(errors.New("plain"), ErrDuplicateEntry))
}

func TestBaseError_WithDetailsLeavesOriginalUntouched(t *testing.T) {
	derived := ErrDuplicateEntry.WithDetails(map[string]any{"field": "email"})

	assert.Nil(t, ErrDuplicateEntry.Details())
	assert.Equal(t, map[string]any{"field": "email"}, derived.Details())
	assert.Equal(t, ErrDuplicateEntry.ErrorCode(), derived.ErrorCode())
	assert.Equal(t, ErrDuplicateEntry.HTTPCode(), derived.HTTPCode())
}

func TestPredefinedErrorContracts(t *testing.T) {
	cases := []struct {
		name        string
		err         AppError
		status      int
		code        string
		operational bool
	}{
		{name: "duplicate", err: ErrDuplicateEntry, status: http.StatusConflict, code: "ERR-DUPLICATE-409", operational: true},
		{name: "foreign key", err: ErrForeignKeyViolation, status: http.StatusBadRequest, code: "ERR-FOREIGNKEY-400", operational: true},
		{name: "not found", err: ErrRecordNotFound, status: http.StatusNotFound, code: "ERR-NOT-FOUND-404", operational: true},
		{name: "invalid token", err: ErrInvalidToken, status: http.StatusUnauthorized, code: "ERR-JWT-INVALID-401", operational: true},
		{name: "expired token", err: ErrTokenExpired, status: http.StatusUnauthorized, code: "ERR-JWT-EXPIRED-401", operational: true},
		{name: "invalid credentials", err: ErrInvalidCredentials, status: http.StatusUnauthorized, code: "", operational: true},
		{name: "internal", err: ErrInternalError, status: http.StatusInternalServerError, code: "", operational: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.HTTPCode())
			assert.Equal(t, tc.code, tc.err.ErrorCode())
			assert.Equal(t, tc.operational, tc.err.Operational())
			assert.NotEmpty(t, tc.err.Message())
		})
	}
}

func TestStorageError(t *testing.T) {
	native := errors.New("duplicate key value violates unique constraint")
	err := NewStorageError(native)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "ERR-STORAGE-400", err.ErrorCode())
	assert.Equal(t, native.Error(), err.Message())
	assert.False(t, err.Operational())
	assert.True(t, errors.Is(err, native))

	var appErr AppError
	assert.True(t, errors.As(errors.Wrap(err, "insert failed"), &appErr))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldIssue{Field: "email", Message: "is required"},
		FieldIssue{Field: "password", Message: "is required"},
	)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Empty(t, err.ErrorCode())
	assert.Equal(t, "Validation failed", err.Message())
	assert.True(t, err.Operational())

	issues, ok := err.Details().([]FieldIssue)
	require.True(t, ok)
	assert.Len(t, issues, 2)
}

func TestRateLimitError(t *testing.T) {
	t.Run("explicit retry-after", func(t *testing.T) {
		err := NewRateLimitError(30)

		assert.Equal(t, http.StatusTooManyRequests, err.HTTPCode())
		assert.Equal(t, "ERR-RATE-LIMIT-429", err.ErrorCode())
		assert.Equal(t, map[string]any{"retryAfter": 30}, err.Details())
	})

	t.Run("non-positive falls back to 60", func(t *testing.T) {
		assert.Equal(t, 60, NewRateLimitError(0).RetryAfter)
		assert.Equal(t, 60, NewRateLimitError(-5).RetryAfter)
	})
}
