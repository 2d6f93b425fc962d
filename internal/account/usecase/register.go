package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/adiwena/verimail/internal/account/entity"
	"github.com/adiwena/verimail/internal/pkg/goerror"
)

type RegisterInput struct {
	Email     string    `validate:"required,email"`
	Password  string    `validate:"required,password"`
	FirstName string    `validate:"required,max=100"`
	LastName  string    `validate:"omitempty,max=100"`
	BirthDate time.Time `validate:"required,minage2y"`
}

type RegisterOutput struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	// OTP is the code derived for the current time window. It leaves the
	// service only through the email channel, never in HTTP responses.
	OTP string
}

// Register creates an unverified account and emails its first OTP code. The
// email is matched and stored case-sensitively.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.hasher.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	secret, _, err := s.totp.Generate(in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp secret", "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.CreateUser(ctx, entity.NewUser{
		Email:     in.Email,
		Password:  string(hashedPassword),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		BirthDate: in.BirthDate,
		OTPSecret: secret,
		Role:      entity.RoleStudent,
	})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.totp.GenerateCode(user.OTPSecret, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to derive otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.deliverOTP(ctx, user, code)

	return &RegisterOutput{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		OTP:       code,
	}, nil
}
