package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusiness(t *testing.T) {
	err := NewBusiness("email is already registered", CodeConflict, "email", "a@x.com")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, "email is already registered", gerr.Msg())
	assert.Equal(t, TypeBusiness, gerr.Type())
	assert.Equal(t, CodeConflict, gerr.Code())
	assert.Equal(t, http.StatusConflict, gerr.StatusCode())
	assert.Equal(t, map[string]string{"email": "a@x.com"}, gerr.Fields())
}

func TestNewServer(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewServer(cause)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	assert.ErrorIs(t, gerr, cause)
	assert.Equal(t, "connection refused", gerr.Error())
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput(nil, "birth_date", "must be a valid date")

	var gerr *Error
	require.ErrorAs(t, err, &gerr)

	assert.Equal(t, TypeValidation, gerr.Type())
	assert.Equal(t, http.StatusUnprocessableEntity, gerr.StatusCode())
	assert.Equal(t, "must be a valid date", gerr.Fields()["birth_date"])
}

func TestStatusCodeMapping(t *testing.T) {
	tests := map[Code]int{
		CodeInvalidFormat: http.StatusBadRequest,
		CodeInvalidInput:  http.StatusUnprocessableEntity,
		CodeNotFound:      http.StatusNotFound,
		CodeConflict:      http.StatusConflict,
		CodeUnauthorized:  http.StatusUnauthorized,
		CodeForbidden:     http.StatusForbidden,
		CodeTimeout:       http.StatusRequestTimeout,
		CodeInternal:      http.StatusInternalServerError,
	}

	for code, want := range tests {
		err := &Error{code: code}
		assert.Equal(t, want, err.StatusCode(), code.String())
	}
}
