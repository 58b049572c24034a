package logger

import (
	"io"
	"os"
	"time"

	"alora/config"
	"alora/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level so startup can log before config is read.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Configure applies the configured level. Production writes JSON lines tagged with the
// app name to out; other environments keep the console writer.
func Configure(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
	}

	level := levelOf(cfg)
	zerolog.SetGlobalLevel(level)

	log.Trace().Str("loglevel", level.String()).Msg("Log level applied.")
}

// levelOf falls back to info in production and trace elsewhere when no level is set.
// An unknown level is treated as trace.
func levelOf(cfg *config.Config) zerolog.Level {
	if cfg.Server.LogLevel == constant.Empty {
		if cfg.Server.Env == constant.ServerEnvProduction {
			return zerolog.InfoLevel
		}

		return zerolog.TraceLevel
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("Unknown log level, using trace.")

		return zerolog.TraceLevel
	}

	return level
}
