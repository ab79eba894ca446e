package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. The level comes from
// LOG_LEVEL (defaulting to info); outside production the output is a
// human-readable console writer instead of raw JSON.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}
}

// Error logs err with a short context message; handlers call it right
// before returning the generic 500 body.
func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
