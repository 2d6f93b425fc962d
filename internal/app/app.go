// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adiwena/verimail/internal/pkg/clock"
	"github.com/adiwena/verimail/internal/pkg/config"
	"github.com/adiwena/verimail/internal/pkg/goroutine"
	"github.com/adiwena/verimail/internal/pkg/hash"
	"github.com/adiwena/verimail/internal/pkg/instrument"
	"github.com/adiwena/verimail/internal/pkg/mail"
	"github.com/adiwena/verimail/internal/pkg/otp"
	"github.com/adiwena/verimail/internal/pkg/router"
	"github.com/adiwena/verimail/internal/pkg/uid"
	"github.com/adiwena/verimail/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hasher    hash.Hash
	uuid      uid.StringID
	totp      otp.OTP

	// resources
	dbConn *pgxpool.Pool
	mail   mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
