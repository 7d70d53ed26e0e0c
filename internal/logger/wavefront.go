package logger

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wavefront/pkg/wavefront"
)

// parserLogger forwards wavefront parser diagnostics to zap.
type parserLogger struct {
	log *zap.Logger
}

// Wavefront returns a wavefront.Logger backed by the global zap logger.
// Critical messages are logged at error level with critical=true.
func Wavefront(fields ...zap.Field) wavefront.Logger {
	return NewWavefront(With(fields...))
}

// NewWavefront adapts an arbitrary zap logger.
func NewWavefront(l *zap.Logger) wavefront.Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &parserLogger{log: l.WithOptions(zap.AddCallerSkip(1))}
}

func (p *parserLogger) Log(level wavefront.Level, msg string) {
	switch level {
	case wavefront.LevelDebug:
		p.log.Debug(msg)
	case wavefront.LevelInfo:
		p.log.Info(msg)
	case wavefront.LevelWarning:
		p.log.Warn(msg)
	case wavefront.LevelError:
		p.log.Error(msg)
	case wavefront.LevelCritical:
		p.log.Error(msg, zap.Bool("critical", true))
	default:
		p.log.Info(msg, zap.Stringer("level", level))
	}
}
