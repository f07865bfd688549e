package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-registry/pkg/util/errorutil"
)

func TestDomainError_Error(t *testing.T) {
	err := errorutil.NewValidationError(errorutil.CodeMissingFields, "missing")
	assert.Equal(t, "missing", err.Error())

	wrapped := &errorutil.DomainError{Message: "boom", Err: errors.New("cause")}
	assert.Equal(t, "boom: cause", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "cause")
}

func TestNewValidationError_DefaultsCode(t *testing.T) {
	err := errorutil.NewValidationError("", "bad input")
	assert.Equal(t, errorutil.CodeValidationFailed, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
}

func TestToDomainError(t *testing.T) {
	assert.Nil(t, errorutil.ToDomainError(nil))

	sentinel := errorutil.NewValidationError(errorutil.CodeUnderage, "too young")
	got := errorutil.ToDomainError(fmt.Errorf("create: %w", sentinel))
	require.NotNil(t, got)
	assert.Same(t, sentinel, got)

	notFound := errorutil.ToDomainError(errorutil.NewNotFound("user", nil))
	assert.Equal(t, errorutil.CodeNotFound, notFound.Code)
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)
	assert.NotNil(t, notFound.Details)

	internal := errorutil.ToDomainError(errors.New("unexpected"))
	assert.Equal(t, errorutil.CodeInternal, internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.HTTPStatus)
	assert.Equal(t, "internal server error", internal.Message)
}
