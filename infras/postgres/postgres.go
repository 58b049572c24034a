package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"time"

	"alora/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName         = "postgres"
	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection holds the read and write pools. Read and Write are the same pool when no
// read replica is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect("write", DSN(pg.Write, pg.Prefix, nil), pg.MaxRetry, pg.RetryWaitTime)

	if pg.Read.Host == "" {
		log.Info().Msg("No read replica configured, reads use the write pool")

		return &Connection{Read: write, Write: write}
	}

	return &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix, nil), pg.MaxRetry, pg.RetryWaitTime),
		Write: write,
	}
}

// Close releases both pools, closing a shared pool once.
func (c *Connection) Close() error {
	pools := []*sqlx.DB{c.Write}
	if c.Read != c.Write {
		pools = append(pools, c.Read)
	}

	var errs []error

	for _, db := range pools {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// DSN renders a postgres URL for endpoint. Credentials are escaped and the database
// name carries the optional prefix. Extra query values are appended after sslmode.
func DSN(endpoint config.PostgresEndpoint, prefix string, extra url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect tries at least once and gives up after maxRetry attempts.
func connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	attempts := max(maxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)

			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database")

		if attempt < attempts {
			time.Sleep(time.Duration(waitSeconds) * time.Second)
		}
	}

	log.Fatal().Str("name", name).Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
