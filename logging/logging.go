package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger: a console writer for local runs and
// JSON lines everywhere else. Library code reaches it through log.Ctx.
func Setup(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.DefaultContextLogger = &log.Logger

	if env == "local" || env == "" {
		cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stdout
			w.TimeFormat = time.RFC3339
		})
		log.Logger = zerolog.New(cw).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("env", env).Logger()
}
