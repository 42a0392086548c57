package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyTraceID is the context key under which the trace id
// of a request is stored
const ContextKeyTraceID contextKey = "trace_id"

// Fields is a collection of key/value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by values that know how to describe
// themselves as log fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a map backed implementation of Fields. It also implements
// Loggable so it can be passed directly to a Logger
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging facade used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggables ...Loggable)
	Info(ctx context.Context, msg string, loggables ...Loggable)
	Warn(ctx context.Context, msg string, loggables ...Loggable)
	Error(ctx context.Context, msg string, loggables ...Loggable)

	// ForClass returns a logger that tags every entry with the
	// package and class that emits it
	ForClass(pkg, class string) Logger
}

// WithTraceID returns a context that carries the trace id
func WithTraceID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, id)
}

// GetTraceID returns the trace id stored in the context, or 0
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	id, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return id
}

// LogrusLoggerProperties are the properties used to create a
// logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level that is written
	Level logrus.Level

	// Output defaults to os.Stderr
	Output io.Writer

	// Format is either "text" or "json". Defaults to "text"
	Format string
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus creates a new Logger that writes through logrus
func NewLogrus(props LogrusLoggerProperties) Logger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false, FullTimestamp: true})
	}

	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

// ParseLevel parses a level name such as "debug" or "warn". Unknown
// names fall back to info
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}

	return l
}

func (l *logrusLogger) withFields(ctx context.Context, loggables []Loggable) *logrus.Entry {
	fields := MapFields{}
	if id := GetTraceID(ctx); id != 0 {
		fields.Add(string(ContextKeyTraceID), id)
	}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(fields)
		}
	}

	return l.entry.WithFields(logrus.Fields(fields))
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	l.withFields(ctx, loggables).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	l.withFields(ctx, loggables).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	l.withFields(ctx, loggables).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	l.withFields(ctx, loggables).Error(msg)
}

func (l *logrusLogger) ForClass(pkg, class string) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields{
		"package": pkg,
		"class":   class,
	})}
}
