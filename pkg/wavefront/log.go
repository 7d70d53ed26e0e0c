package wavefront

import "fmt"

// Level is the severity of a parser log message.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Logger receives parser diagnostics. The parser never reads state back.
type Logger interface {
	Log(level Level, msg string)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(level Level, msg string)

// Log calls f(level, msg). A nil f discards the message.
func (f LoggerFunc) Log(level Level, msg string) {
	if f == nil {
		return
	}
	f(level, msg)
}

type nopLogger struct{}

func (nopLogger) Log(Level, string) {}

// Option configures ParseObj and ParseLibrary.
type Option func(*options)

type options struct {
	logger            Logger
	strictNormals     bool
	charset           string
	relativeLibraries bool
	cache             *LibraryCache
}

func defaultOptions() options {
	return options{
		logger:            nopLogger{},
		relativeLibraries: true,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = nopLogger{}
	}
	return o
}

// WithLogger sends parser diagnostics to l. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if f, ok := l.(LoggerFunc); ok && f == nil {
			l = nil
		}
		o.logger = l
	}
}

// WithStrictNormals rejects "vn" lines carrying a stray fifth token.
// By default the extra token is ignored.
func WithStrictNormals(strict bool) Option {
	return func(o *options) {
		o.strictNormals = strict
	}
}

// WithEncoding decodes source files from the named charset ("windows-1252",
// "shift_jis", ...). The default is UTF-8.
func WithEncoding(charset string) Option {
	return func(o *options) {
		o.charset = charset
	}
}

// WithRelativeLibraries controls whether mtllib paths are looked up next to
// the OBJ file before the working directory. Enabled by default.
func WithRelativeLibraries(enabled bool) Option {
	return func(o *options) {
		o.relativeLibraries = enabled
	}
}

// WithLibraryCache shares parsed material libraries between parses.
// Each model receives its own copies of the cached materials.
func WithLibraryCache(c *LibraryCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// logf formats and logs a message.
func (o *options) logf(level Level, format string, args ...any) {
	o.logger.Log(level, fmt.Sprintf(format, args...))
}
