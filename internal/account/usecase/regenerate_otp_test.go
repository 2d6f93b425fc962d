package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerateOTPSendsFreshCode(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	out, err := f.uc.RegenerateOTP(context.Background(), RegenerateOTPInput{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Regexp(t, `^\d{6}$`, out.OTP)
	assert.True(t, f.totp.Validate(out.OTP, secret, testNow))

	f.drain(t)

	sent := f.mailer.all()
	require.Len(t, sent, 2) // registration mail plus the regenerated one
	assert.True(t, f.totp.Validate(sent[1].code, secret, testNow))
}

func TestRegenerateOTPReusesSecret(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	_, err := f.uc.RegenerateOTP(context.Background(), RegenerateOTPInput{Email: "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, secret, f.repo.users["a@x.com"].OTPSecret)
}

func TestRegenerateOTPUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RegenerateOTP(context.Background(), RegenerateOTPInput{Email: "missing@x.com"})
	requireStatus(t, err, http.StatusNotFound)
}

func TestRegenerateOTPAlreadyVerified(t *testing.T) {
	f := newFixture(t)
	secret := registerUser(t, f)

	code, err := f.totp.GenerateCode(secret, testNow)
	require.NoError(t, err)

	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
	require.NoError(t, err)

	_, err = f.uc.RegenerateOTP(context.Background(), RegenerateOTPInput{Email: "a@x.com"})
	requireStatus(t, err, http.StatusConflict)
}

func TestRegenerateOTPValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RegenerateOTP(context.Background(), RegenerateOTPInput{Email: "not-an-email"})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}
