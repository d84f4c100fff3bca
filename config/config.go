package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

type (
	Config struct {
		Server  Server
		Console Console
		Auth    Auth
		PG      PG
		Log     Log
	}

	Server struct {
		Port                string `env:"CONSOLE_SERVER_PORT" envDefault:"8080"`
		ReadTimeoutSeconds  int    `env:"CONSOLE_SERVER_READ_TIMEOUT_SECONDS" envDefault:"15"`
		WriteTimeoutSeconds int    `env:"CONSOLE_SERVER_WRITE_TIMEOUT_SECONDS" envDefault:"15"`
		IdleTimeoutSeconds  int    `env:"CONSOLE_SERVER_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
	}

	// Console holds the locale inputs of the listing views and the record
	// source selection.
	Console struct {
		Locale      string `env:"CONSOLE_LOCALE" envDefault:"en-US"`
		TimeZone    string `env:"CONSOLE_TIMEZONE" envDefault:"UTC"`
		TimeLayout  string `env:"CONSOLE_TIME_LAYOUT" envDefault:"1/2/2006, 3:04:05 PM"`
		DateLayout  string `env:"CONSOLE_DATE_LAYOUT" envDefault:"1/2/2006"`
		PageSize    int    `env:"CONSOLE_PAGE_SIZE" envDefault:"10"`
		MaxPageSize int    `env:"CONSOLE_MAX_PAGE_SIZE" envDefault:"100"`
		RecordsFile string `env:"CONSOLE_RECORDS_FILE"`
	}

	Auth struct {
		Email             string `env:"CONSOLE_ADMIN_EMAIL" envDefault:"admin@example.com"`
		Password          string `env:"CONSOLE_ADMIN_PASSWORD" envDefault:"admin123"`
		SessionTTLMinutes int    `env:"CONSOLE_SESSION_TTL_MINUTES" envDefault:"480"`
	}

	// PG is optional; an empty Host keeps the console on sample or file data.
	PG struct {
		User     string `env:"CONSOLE_PG_USER"`
		Password string `env:"CONSOLE_PG_PASSWORD"`
		Host     string `env:"CONSOLE_PG_HOST"`
		Port     int    `env:"CONSOLE_PG_PORT" envDefault:"5432"`
		DBName   string `env:"CONSOLE_PG_DBNAME"`
		SSLMode  string `env:"CONSOLE_PG_SSLMODE" envDefault:"disable"`
		PoolMax  int    `env:"CONSOLE_PG_POOL_MAX" envDefault:"4"`
	}

	Log struct {
		Level string `env:"CONSOLE_LOG_LEVEL" envDefault:"info"`
	}
)

func NewConfig() (Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.Console.PageSize < 1 || cfg.Console.PageSize > cfg.Console.MaxPageSize {
		return Config{}, fmt.Errorf("config error: CONSOLE_PAGE_SIZE must be between 1 and %d", cfg.Console.MaxPageSize)
	}

	return *cfg, nil
}

func (pg PG) Enabled() bool {
	return pg.Host != ""
}

func (pg PG) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.User, pg.Password),
		Host:     net.JoinHostPort(pg.Host, strconv.Itoa(pg.Port)),
		Path:     "/" + pg.DBName,
		RawQuery: url.Values{"sslmode": {pg.SSLMode}}.Encode(),
	}
	return u.String()
}

func (a Auth) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// TableOptions resolves the locale, time zone and layout of the listing
// views.
func (c Console) TableOptions() (table.Options, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return table.Options{}, fmt.Errorf("config error: CONSOLE_LOCALE: %w", err)
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return table.Options{}, fmt.Errorf("config error: CONSOLE_TIMEZONE: %w", err)
	}
	return table.Options{Locale: tag, Location: loc, TimeLayout: c.TimeLayout, DateLayout: c.DateLayout}, nil
}
