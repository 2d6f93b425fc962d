package inbound

import (
	"time"

	"github.com/adiwena/verimail/internal/account/usecase"
	"github.com/adiwena/verimail/internal/pkg/goerror"
	"github.com/adiwena/verimail/internal/pkg/router"
)

const birthDateLayout = "2006-01-02"

// HTTPEndpoint exposes HTTP handlers for the registration and OTP workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new account and triggers OTP email delivery.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, goerror.NewInvalidInput(nil, "birth_date", "birth_date must be a valid date in YYYY-MM-DD format")
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{User: UserPayload{
		ID:        resp.ID,
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
	}}, nil
}

// VerifyOTP validates a submitted code and marks the account verified.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		ID:         resp.ID,
		Email:      resp.Email,
		IsVerified: resp.IsVerified,
	}, nil
}

// RegenerateOTP emails a fresh code for an unverified account.
func (h *HTTPEndpoint) RegenerateOTP(r *router.Request) (any, error) {
	var req RegenerateOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RegenerateOTP(r.Context(), usecase.RegenerateOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return RegenerateOTPResponse{Email: resp.Email}, nil
}
