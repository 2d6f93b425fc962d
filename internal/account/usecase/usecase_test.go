package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	pqotp "github.com/pquerna/otp"
	"github.com/stretchr/testify/require"

	"github.com/adiwena/verimail/internal/pkg/goerror"

	"github.com/adiwena/verimail/internal/account/entity"
	"github.com/adiwena/verimail/internal/pkg/clock"
	"github.com/adiwena/verimail/internal/pkg/goroutine"
	"github.com/adiwena/verimail/internal/pkg/hash"
	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/otp"
	"github.com/adiwena/verimail/internal/pkg/validator"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// fakeRepoDB is an in-memory repoDB keyed by exact email bytes.
type fakeRepoDB struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	passwords map[string]string
	nextID    int64

	getErr    error
	createErr error
	updateErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		users:     make(map[string]*entity.User),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	user, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeRepoDB) CreateUser(_ context.Context, in entity.NewUser) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.users[in.Email]; ok {
		return nil, goerror.ErrConflict
	}

	user := &entity.User{
		ID:        f.nextID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		OTPSecret: in.OTPSecret,
		Role:      in.Role,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	f.nextID++
	f.users[in.Email] = user
	f.passwords[in.Email] = in.Password

	cp := *user
	return &cp, nil
}

func (f *fakeRepoDB) MarkUserVerified(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return false, f.updateErr
	}

	for _, user := range f.users {
		if user.ID == id && !user.IsVerified {
			user.IsVerified = true
			return true, nil
		}
	}
	return false, nil
}

type sentMail struct {
	email     string
	firstName string
	code      string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendOTP(_ context.Context, email, firstName, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{email: email, firstName: firstName, code: code})
	return nil
}

func (f *fakeMailer) all() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

type fixture struct {
	uc     *Usecase
	repo   *fakeRepoDB
	mailer *fakeMailer
	totp   otp.OTP
	gr     *goroutine.Manager
}

// drain waits for fire-and-forget deliveries. Each test builds its own
// manager, so Wait never blocks on another test's work.
func (f *fixture) drain(t *testing.T) {
	t.Helper()
	require.NoError(t, f.gr.Wait())
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	repo := newFakeRepoDB()
	mailer := &fakeMailer{}
	totp := otp.NewTOTP("verimail", 30, 10, pqotp.DigitsSix)
	gr := goroutine.NewManager(4)

	uc := New(Dependency{
		RepoDB:     repo,
		Mailer:     mailer,
		Validator:  v,
		Hasher:     hash.NewBcrypt(4, ""),
		Totp:       totp,
		Clock:      clock.Static{At: testNow},
		Instrument: instrument.NewNoop(),
		Goroutine:  gr,
	})

	return &fixture{uc: uc, repo: repo, mailer: mailer, totp: totp, gr: gr}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "a@x.com",
		Password:  "testpassword",
		FirstName: "John",
		BirthDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}
