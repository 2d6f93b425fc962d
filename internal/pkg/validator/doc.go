// Package validator wraps go-playground/validator v10 behind a small
// interface. Validation failures surface as a field-to-message map with
// snake_case keys, ready for the HTTP error envelope.
package validator
