package mail

import (
	"context"
	"io"
)

// Message is a provider-agnostic email payload.
type Message struct {
	// From overrides the configured default sender when set.
	From string
	// To lists the recipients. At least one is required.
	To []string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body, used alone when HTMLBody is empty.
	TextBody string
	// HTMLBody is the optional HTML alternative.
	HTMLBody string
}

// Mail sends email messages through some delivery provider.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}
