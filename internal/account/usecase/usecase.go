// Package usecase implements the account registration and verification flows.
package usecase

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/adiwena/verimail/internal/account/entity"
	"github.com/adiwena/verimail/internal/pkg/clock"
	"github.com/adiwena/verimail/internal/pkg/config"
	"github.com/adiwena/verimail/internal/pkg/goroutine"
	"github.com/adiwena/verimail/internal/pkg/hash"
	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/otp"
	"github.com/adiwena/verimail/internal/pkg/validator"
)

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error)
	MarkUserVerified(ctx context.Context, id int64) (bool, error)
}

type repoMailer interface {
	SendOTP(ctx context.Context, email, firstName, code string) error
}

type Usecase struct {
	repoDB    repoDB
	mailer    repoMailer
	validator validator.Validator
	cfg       config.Config
	hasher    hash.Hash
	totp      otp.OTP
	clock     clock.Clocker
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoDB     repoDB
	Mailer     repoMailer
	Validator  validator.Validator
	Config     config.Config
	Hasher     hash.Hash
	Totp       otp.OTP
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		mailer:    dep.Mailer,
		validator: dep.Validator,
		cfg:       dep.Config,
		hasher:    dep.Hasher,
		totp:      dep.Totp,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

// deliverOTP emails a verification code without blocking the request.
// Delivery failures are logged, never surfaced: the account outcome must not
// depend on the mail provider.
func (s *Usecase) deliverOTP(ctx context.Context, user *entity.User, code string) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.mailer.SendOTP(ctx, user.Email, user.FirstName, code); err != nil {
			slog.ErrorContext(ctx, "failed to send otp email", "user_id", user.ID, "error", err)
			return err
		}

		return nil
	})
}
