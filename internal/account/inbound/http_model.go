package inbound

import "net/http"

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type RegenerateOTPRequest struct {
	Email string `json:"email"`
}

// UserPayload is the public view of an account. The OTP code itself never
// appears here, it travels by email.
type UserPayload struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

type RegisterResponse struct {
	User UserPayload `json:"user"`
}

func (RegisterResponse) Message() string {
	return "Successfully registered a new account. OTP code has been sent to your email address"
}

func (RegisterResponse) StatusCode() int { return http.StatusCreated }

type VerifyOTPResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

func (VerifyOTPResponse) Message() string {
	return "Your account has been successfully verified"
}

type RegenerateOTPResponse struct {
	Email string `json:"email"`
}

func (RegenerateOTPResponse) Message() string {
	return "A new OTP code has been sent to your email address"
}
