// Package inbound exposes the account module over HTTP.
package inbound

import (
	"context"

	"github.com/adiwena/verimail/internal/account/usecase"
	"github.com/adiwena/verimail/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	RegenerateOTP(ctx context.Context, in usecase.RegenerateOTPInput) (*usecase.RegenerateOTPOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/otp/verify", end.VerifyOTP)
	r.POST("/api/v1/auth/otp/regenerate", end.RegenerateOTP)
}
