package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	driverFlag        = "driver"
	dsnFlag           = "dsn"
	migrationPathFlag = "migrations-path"
	downFlag          = "down"
)

type options struct {
	driver         string
	dsn            string
	migrationsPath string
	down           bool
}

func main() {
	_ = godotenv.Load()

	opts := getFlagsValues()
	validateFlags(opts)
	makeMigrations(opts)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() options {
	var o options
	pflag.StringVarP(&o.driver, driverFlag, "d", envOr("DB_DRIVER", "mysql"), "mysql|postgres")
	pflag.StringVarP(&o.dsn, dsnFlag, "s", os.Getenv("DB_DSN"), "database DSN (defaults to DB_DSN)")
	pflag.StringVarP(&o.migrationsPath, migrationPathFlag, "m", "", "migrations directory (defaults to ./migrations/<driver>)")
	pflag.BoolVar(&o.down, downFlag, false, "roll back every applied migration")
	pflag.Parse()

	if o.migrationsPath == "" {
		o.migrationsPath = "migrations/" + o.driver
	}
	return o
}

func validateFlags(o options) {
	var errs []error

	if o.dsn == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", dsnFlag))
	}
	switch o.driver {
	case "mysql", "postgres":
	default:
		errs = append(errs, fmt.Errorf("--%s flag: unknown driver %q", driverFlag, o.driver))
	}

	if len(errs) != 0 {
		slog.Error("bad args", "err", errors.Join(errs...))
		fallDown()
	}
}

// databaseURL turns the application DSN into the URL golang-migrate expects.
// MySQL DSNs are used as-is; Postgres must be given in URL form.
func databaseURL(driver, dsn string) (string, error) {
	switch driver {
	case "mysql":
		return "mysql://" + dsn, nil
	case "postgres":
		for _, scheme := range []string{"postgres://", "postgresql://"} {
			if strings.HasPrefix(dsn, scheme) {
				return "pgx5://" + strings.TrimPrefix(dsn, scheme), nil
			}
		}
		return "", errors.New("postgres dsn must be a postgres:// URL")
	}
	return "", fmt.Errorf("unknown driver %q", driver)
}

func makeMigrations(o options) {
	dbURL, err := databaseURL(o.driver, o.dsn)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", o.migrationsPath), dbURL)
	if err != nil {
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	defer m.Close()

	m.Log = NewMigrationLogger()

	run, action := m.Up, "applied"
	if o.down {
		run, action = m.Down, "rolled back"
	}
	if err := run(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return
		}
		slog.Error("failed to migrate", "err", err)
		fallDown()
	}
	m.Log.Printf("migrations %s", action)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fallDown() {
	os.Exit(2)
}
