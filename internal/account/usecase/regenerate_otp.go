package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adiwena/verimail/internal/pkg/goerror"
)

type RegenerateOTPInput struct {
	Email string `validate:"required,email"`
}

type RegenerateOTPOutput struct {
	ID    int64
	Email string
	// OTP is the re-derived code for the current time window, delivered by
	// email only.
	OTP string
}

// RegenerateOTP emails a fresh code for an unverified account. The stored
// secret is reused, so codes from the current time window remain valid.
func (s *Usecase) RegenerateOTP(ctx context.Context, in RegenerateOTPInput) (*RegenerateOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "RegenerateOTP")
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

	code, err := s.totp.GenerateCode(user.OTPSecret, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to derive otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.deliverOTP(ctx, user, code)

	return &RegenerateOTPOutput{
		ID:    user.ID,
		Email: user.Email,
		OTP:   code,
	}, nil
}
