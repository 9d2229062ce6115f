package app

import (
	"errors"
	"strings"
	"time"

	"github.com/Egor213/DQMeta/migrations"
	errorsUtils "github.com/Egor213/DQMeta/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

// EnsureSchema brings quality_logs up to date. Calling it on an already
// initialized database is a no-op.
func EnsureSchema(pgUrl string) error {
	pgUrl = withSSLMode(pgUrl)

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	for connAttempts > 0 {
		mgrt, err = newMigrate(pgUrl)
		if err == nil {
			break
		}

		connAttempts--
		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts)
		time.Sleep(defaultTimeout)
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}

func newMigrate(pgUrl string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, pgUrl)
	if err != nil {
		src.Close()
		return nil, err
	}
	return m, nil
}

func withSSLMode(pgUrl string) string {
	if strings.Contains(pgUrl, "sslmode=") {
		return pgUrl
	}
	if strings.Contains(pgUrl, "?") {
		return pgUrl + "&sslmode=disable"
	}
	return pgUrl + "?sslmode=disable"
}
