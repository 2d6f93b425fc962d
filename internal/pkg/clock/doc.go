// Package clock abstracts the system clock behind a tiny interface so that
// time-sensitive logic (OTP windows, timestamps) stays deterministic in tests.
package clock
