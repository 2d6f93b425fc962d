// Package mailer sends account emails through the shared mail client.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/codes"

	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/mail"
)

type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func NewMailer(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

// SendOTP delivers a verification code to the given address. Transient SMTP
// failures are retried with exponential backoff before giving up.
func (m *Mailer) SendOTP(ctx context.Context, email, firstName, code string) error {
	ctx, span := m.ins.Tracer("account.outbound.mailer").Start(ctx, "SendOTP")
	defer span.End()

	msg := mail.Message{
		To:       []string{email},
		Subject:  "Your verification code",
		TextBody: fmt.Sprintf("Hi %s,\n\nYour verification code is %s. It expires in a few minutes.\n", firstName, code),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>. It expires in a few minutes.</p>",
			firstName, code,
		),
	}

	b := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := m.client.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
