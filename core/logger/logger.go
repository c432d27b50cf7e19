package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger level. Unknown levels fall back to info.
func Init(level string) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) { emit(log.Debug(), msg, args) }
func Info(msg string, args ...any)  { emit(log.Info(), msg, args) }
func Warn(msg string, args ...any)  { emit(log.Warn(), msg, args) }
func Error(msg string, args ...any) { emit(log.Error(), msg, args) }

// emit pairs variadic args into structured fields. A lone error value becomes
// the "error" field; any other unpaired value is logged under "detail".
func emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); i++ {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			ev = ev.Interface(key, args[i+1])
			i++
			continue
		}
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
			continue
		}
		ev = ev.Interface("detail", args[i])
	}
	ev.Msg(msg)
}
