package logger

import (
	"os"
	"time"

	"Feira/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Logger padrão antes de Init, para mensagens emitidas durante o bootstrap.
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
		return
	}

	log = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
