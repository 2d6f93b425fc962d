// Package otp provides helpers for generating and validating time-based
// one-time passwords (TOTP).
//
// The service mails TOTP codes for account verification, so the validation
// window is deliberately wide: codes stay valid for several minutes to absorb
// clock skew and email delivery delay.
package otp
