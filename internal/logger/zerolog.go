package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options selects where and how the zerolog backend writes
type Options struct {
	Level zerolog.Level
	// JSON writes one JSON object per line instead of the console format
	JSON bool
	// Writer defaults to stdout
	Writer io.Writer
}

// ZerologAdapter implements Logger on top of zerolog
type ZerologAdapter struct {
	logger zerolog.Logger
}

func New(opts Options) *ZerologAdapter {
	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	return &ZerologAdapter{
		logger: zerolog.New(out).Level(opts.Level).With().Timestamp().Logger(),
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.event(z.logger.Error().Err(err), component, fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.event(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) event(e *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return e.Str("component", component).Fields(fields)
}
