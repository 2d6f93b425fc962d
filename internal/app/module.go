package app

import (
	"log/slog"
	"os"

	"github.com/adiwena/verimail/internal/account"
)

func (a *App) initModules() {
	if err := account.New(account.Dependency{
		DBConn:     a.dbConn,
		Mail:       a.mail,
		Goroutine:  a.goroutine,
		Router:     a.router,
		Config:     a.config,
		Instrument: a.ins,
		Hasher:     a.hasher,
		Clock:      a.clock,
		Totp:       a.totp,
		Validator:  a.validator,
	}); err != nil {
		slog.Error("failed to init module account", "error", err)
		os.Exit(1)
	}
}
