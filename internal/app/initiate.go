package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	libOTP "github.com/pquerna/otp"
	"github.com/pressly/goose/v3"
	"github.com/rs/cors"

	"github.com/adiwena/verimail/internal/migrations"
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

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "/config/config.yaml"
		if os.Getenv("LOCAL") == "true" {
			path = "./config/config.yaml"
		}
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("app.tz"))

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	switch driver := strings.TrimSpace(a.config.GetString("hash.driver")); driver {
	case "argon2id":
		a.hasher = hash.NewArgon2id(a.config.GetString("hash.argon2id.pepper"))
	case "bcrypt", "":
		a.hasher = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))
	default:
		slog.Error("unknown hash driver", "driver", driver)
		os.Exit(1)
	}

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator

	a.totp = otp.NewTOTP(
		a.config.GetString("otp.totp.issuer"),
		a.config.GetUint("otp.totp.period"),
		a.config.GetUint("otp.totp.skew"),
		libOTP.DigitsSix,
	)
}

func (a *App) initDatabase() {
	cfg, err := pgxpool.ParseConfig(a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to parse DB connection string", "error", err)
		os.Exit(1)
	}

	cfg.MaxConns = a.config.GetInt32("database.pool.max_conns")
	cfg.MinConns = a.config.GetInt32("database.pool.min_conns")
	cfg.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	cfg.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	cfg.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, cfg)
	if err != nil {
		slog.Error("failed to create DB connection pool", "error", err)
		os.Exit(1)
	}

	pingCtx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		slog.Error("failed to ping DB", "error", err)
		os.Exit(1)
	}

	a.dbConn = pool
	a.runMigrations()
}

// runMigrations applies pending schema migrations through a short-lived
// database/sql connection; the pgx pool stays dedicated to request traffic.
func (a *App) runMigrations() {
	db, err := sql.Open("pgx", a.config.GetString("database.url"))
	if err != nil {
		slog.Error("failed to open DB for migrations", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close migration DB", "error", err)
		}
	}()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		slog.Error("failed to set migration dialect", "error", err)
		os.Exit(1)
	}

	if err := goose.UpContext(a.ctx, db, "."); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
}

func (a *App) initMail() {
	smtp, err := mail.NewSMTP(mail.SMTPConfig{
		Host:     a.config.GetString("mail.host"),
		Port:     a.config.GetInt("mail.port"),
		Username: a.config.GetString("mail.username"),
		Password: a.config.GetString("mail.password"),
		From:     a.config.GetString("mail.from"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = smtp
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
	})

	a.router.GET("/health", func(*router.Request) (any, error) {
		return map[string]string{
			"status":  "ok",
			"service": a.config.GetString("app.name"),
		}, nil
	})

	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins:   a.config.GetArray("app.server.cors"),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				return a.mail.Close()
			},
		},
		{
			name: "Database",
			fn: func(context.Context) error {
				a.dbConn.Close()

				return nil
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
