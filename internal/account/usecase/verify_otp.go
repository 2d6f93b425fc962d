package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adiwena/verimail/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required,len=6,numeric"`
}

type VerifyOTPOutput struct {
	ID         int64
	Email      string
	IsVerified bool
}

// VerifyOTP validates a code against the account's secret and marks the
// account verified. Verification happens at most once; a second valid code is
// rejected as a conflict.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Email not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if user.IsVerified {
		return nil, goerror.NewBusiness("Account already verified", goerror.CodeConflict)
	}

	if !s.totp.Validate(in.OTP, user.OTPSecret, s.clock.Now()) {
		slog.WarnContext(ctx, "invalid otp code", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid OTP code", goerror.CodeUnauthorized)
	}

	ok, err := s.repoDB.MarkUserVerified(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo mark user verified", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !ok {
		// Lost the race against a concurrent verification.
		return nil, goerror.NewBusiness("Account already verified", goerror.CodeConflict)
	}

	return &VerifyOTPOutput{
		ID:         user.ID,
		Email:      user.Email,
		IsVerified: true,
	}, nil
}
