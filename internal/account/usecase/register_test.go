package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwena/verimail/internal/account/entity"
	"github.com/adiwena/verimail/internal/pkg/goerror"
)

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Equal(t, "John", out.FirstName)
	assert.Empty(t, out.LastName)
	assert.Regexp(t, `^\d{6}$`, out.OTP)

	stored := f.repo.users["a@x.com"]
	require.NotNil(t, stored)
	assert.False(t, stored.IsVerified)
	assert.Equal(t, entity.RoleStudent, stored.Role)
	assert.NotEmpty(t, stored.OTPSecret)
	assert.NotEqual(t, "testpassword", f.repo.passwords["a@x.com"])
	assert.NotEmpty(t, f.repo.passwords["a@x.com"])
}

func TestRegisterSendsValidOTP(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	f.drain(t)

	sent := f.mailer.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "a@x.com", sent[0].email)
	assert.Equal(t, "John", sent[0].firstName)
	assert.Equal(t, out.OTP, sent[0].code)

	secret := f.repo.users["a@x.com"].OTPSecret
	assert.True(t, f.totp.Validate(sent[0].code, secret, testNow))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), validRegisterInput())
	requireStatus(t, err, http.StatusConflict)
}

func TestRegisterEmailIsCaseSensitive(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	in := validRegisterInput()
	in.Email = "A@x.com"
	out, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "A@x.com", out.Email)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	tests := map[string]func(*RegisterInput){
		"missing email":      func(in *RegisterInput) { in.Email = "" },
		"malformed email":    func(in *RegisterInput) { in.Email = "not-an-email" },
		"short password":     func(in *RegisterInput) { in.Password = "short" },
		"long password":      func(in *RegisterInput) { in.Password = "1234567890123456789012345678901" },
		"missing first name": func(in *RegisterInput) { in.FirstName = "" },
		"recent birth date":  func(in *RegisterInput) { in.BirthDate = testNow.AddDate(-1, 0, 0) },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := validRegisterInput()
			mutate(&in)

			_, err := f.uc.Register(context.Background(), in)
			requireStatus(t, err, http.StatusUnprocessableEntity)
		})
	}
}

func TestRegisterMailFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(t)
	f.mailer.err = assert.AnError

	out, err := f.uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	assert.NotNil(t, out)

	err = f.gr.Wait()
	assert.Error(t, err)
	assert.NotNil(t, f.repo.users["a@x.com"])
}

func TestRegisterRepoFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.getErr = assert.AnError

	_, err := f.uc.Register(context.Background(), validRegisterInput())
	requireStatus(t, err, http.StatusInternalServerError)
}

func requireStatus(t *testing.T, err error, want int) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, want, gerr.StatusCode())
}
