package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"alora/config"
	"alora/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const sourceURL = "file://migrations/postgres"

type step struct {
	run  func(mig *migrate.Migrate) error
	done string
}

var steps = map[string]step{
	"up":      {run: (*migrate.Migrate).Up, done: "Database migrations completed successfully"},
	"step-up": {run: func(mig *migrate.Migrate) error { return mig.Steps(1) }, done: "Database migrated one step up"},
	"down":    {run: func(mig *migrate.Migrate) error { return mig.Steps(-1) }, done: "Database migrated one step down"},
	"drop":    {run: (*migrate.Migrate).Down, done: "Database migrations rolled back successfully"},
}

// Runner applies a migration action against the write database. No pending change is not an error.
func Runner(cfg *config.Config, action string) error {
	s, ok := steps[action]
	if !ok {
		return fmt.Errorf("unknown migration action %q", action)
	}

	pg := cfg.DB.Postgres

	var extra url.Values
	if pg.MigrationTable != "" {
		extra = url.Values{"x-migrations-table": {pg.MigrationTable}}
	}

	mig, err := migrate.New(sourceURL, postgres.DSN(pg.Write, pg.Prefix, extra))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer func() {
		sourceErr, dbErr := mig.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close migrate instance")
		}
	}()

	if err = s.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg(s.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Runner(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, "drop")
}
