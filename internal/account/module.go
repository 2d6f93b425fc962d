// Package account wires the registration and OTP verification module.
package account

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adiwena/verimail/internal/account/inbound"
	"github.com/adiwena/verimail/internal/account/outbound/db"
	"github.com/adiwena/verimail/internal/account/outbound/mailer"
	"github.com/adiwena/verimail/internal/account/usecase"
	"github.com/adiwena/verimail/internal/pkg/clock"
	"github.com/adiwena/verimail/internal/pkg/config"
	"github.com/adiwena/verimail/internal/pkg/goroutine"
	"github.com/adiwena/verimail/internal/pkg/hash"
	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/mail"
	"github.com/adiwena/verimail/internal/pkg/otp"
	"github.com/adiwena/verimail/internal/pkg/router"
	"github.com/adiwena/verimail/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Hasher     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Totp       otp.OTP                    `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMailer := mailer.NewMailer(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		Mailer:     repoMailer,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Hasher:     dep.Hasher,
		Totp:       dep.Totp,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
