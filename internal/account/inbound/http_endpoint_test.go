package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwena/verimail/internal/account/usecase"
	"github.com/adiwena/verimail/internal/pkg/config"
	"github.com/adiwena/verimail/internal/pkg/goerror"
	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/router"
	"github.com/adiwena/verimail/internal/pkg/uid"
)

type fakeUC struct {
	registerIn  *usecase.RegisterInput
	registerOut *usecase.RegisterOutput
	registerErr error

	verifyOut *usecase.VerifyOTPOutput
	verifyErr error

	regenOut *usecase.RegenerateOTPOutput
	regenErr error
}

func (f *fakeUC) Register(_ context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.registerIn = &in
	return f.registerOut, f.registerErr
}

func (f *fakeUC) VerifyOTP(context.Context, usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	return f.verifyOut, f.verifyErr
}

func (f *fakeUC) RegenerateOTP(context.Context, usecase.RegenerateOTPInput) (*usecase.RegenerateOTPOutput, error) {
	return f.regenOut, f.regenErr
}

func serve(t *testing.T, uc uc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: test\n"))
	require.NoError(t, err)

	ro := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(ro, uc)

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	uc := &fakeUC{registerOut: &usecase.RegisterOutput{
		ID:        1,
		Email:     "a@x.com",
		FirstName: "John",
		OTP:       "123456",
	}}

	rec := serve(t, uc, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"testpassword","first_name":"John","birth_date":"2000-01-01"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message string `json:"message"`
		Data    struct {
			User UserPayload `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Successfully registered a new account. OTP code has been sent to your email address", body.Message)
	assert.Equal(t, "a@x.com", body.Data.User.Email)
	assert.Equal(t, int64(1), body.Data.User.ID)

	// The OTP code must never leak into the HTTP response.
	assert.NotContains(t, rec.Body.String(), "123456")

	require.NotNil(t, uc.registerIn)
	assert.Equal(t, 2000, uc.registerIn.BirthDate.Year())
}

func TestRegisterEndpointBadBirthDate(t *testing.T) {
	rec := serve(t, &fakeUC{}, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"testpassword","first_name":"John","birth_date":"01-01-2000"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "birth_date")
}

func TestRegisterEndpointUnknownField(t *testing.T) {
	rec := serve(t, &fakeUC{}, http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","surprise":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTPEndpoint(t *testing.T) {
	uc := &fakeUC{verifyOut: &usecase.VerifyOTPOutput{ID: 1, Email: "a@x.com", IsVerified: true}}

	rec := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/verify", `{"email":"a@x.com","otp":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_verified":true`)
}

func TestVerifyOTPEndpointInvalidCode(t *testing.T) {
	uc := &fakeUC{verifyErr: goerror.NewBusiness("Invalid OTP code", goerror.CodeUnauthorized)}

	rec := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/verify", `{"email":"a@x.com","otp":"999999"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid OTP code")
}

func TestRegenerateOTPEndpoint(t *testing.T) {
	uc := &fakeUC{regenOut: &usecase.RegenerateOTPOutput{ID: 1, Email: "a@x.com", OTP: "654321"}}

	rec := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/regenerate", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a@x.com")
	assert.NotContains(t, rec.Body.String(), "654321")
}

func TestRegenerateOTPEndpointNotRegistered(t *testing.T) {
	uc := &fakeUC{regenErr: goerror.NewBusiness("Email not registered", goerror.CodeNotFound)}

	rec := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/regenerate", `{"email":"missing@x.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
