package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, f *fixture) (secret string) {
	t.Helper()

	_, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	return f.repo.users["a@x.com"].OTPSecret
}

func TestVerifyOTPHappyPath(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	code, err := f.totp.GenerateCode(secret, testNow)
	require.NoError(t, err)

	out, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	require.NoError(t, err)

	assert.True(t, out.IsVerified)
	assert.Equal(t, "a@x.com", out.Email)
	assert.True(t, f.repo.users["a@x.com"].IsVerified)
}

func TestVerifyOTPAcceptsSkewedCode(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	// 4 minutes old is still inside the +/-5 minute window.
	code, err := f.totp.GenerateCode(secret, testNow.Add(-4*time.Minute))
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	assert.NoError(t, err)
}

func TestVerifyOTPInvalidCode(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	code, err := f.totp.GenerateCode(secret, testNow)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: wrong})
	requireStatus(t, err, http.StatusUnauthorized)
	assert.False(t, f.repo.users["a@x.com"].IsVerified)
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "missing@x.com", OTP: "123456"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestVerifyOTPAlreadyVerified(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	code, err := f.totp.GenerateCode(secret, testNow)
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	requireStatus(t, err, http.StatusConflict)
}

func TestVerifyOTPValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: "12ab56"})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "", OTP: "123456"})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestVerifyOTPRepoFailure(t *testing.T) {
	f := newFixture(t)
	registerUser(t, f)
	f.repo.updateErr = assert.AnError

	code, err := f.totp.GenerateCode(f.repo.users["a@x.com"].OTPSecret, testNow)
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	requireStatus(t, err, http.StatusInternalServerError)
}
