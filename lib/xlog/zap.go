package xlog

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xcontainer/lib/infra"
)

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger  atomic.Pointer[zap.Logger]
	level   zapcore.Level
	writer  LogOutWriterType
	encoder LogEncoderType
}

func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	logger := l.logger.Load().WithOptions(zap.IncreaseLevel(level))
	l.logger.Store(logger)
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	var (
		newFields = make([]zap.Field, 0, len(fields)+1)
		es        infra.ErrorStack
	)
	if errors.As(err, &es) && es != nil {
		newFields = append(newFields, zap.Inline(es))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

type loggerCfg struct {
	writerType  *LogOutWriterType
	encoderType *LogEncoderType
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
	name        string
	core        xLogCore
}

func (cfg *loggerCfg) apply(l *xLogger) {
	if cfg.writerType != nil {
		l.writer = *cfg.writerType
	} else {
		l.writer = StdOut
	}

	if cfg.encoderType != nil {
		l.encoder = *cfg.encoderType
	} else {
		l.encoder = JSON
	}

	if cfg.level != nil {
		l.level = *cfg.level
	} else {
		l.level = getLogLevelOrDefault(os.Getenv(XLogLevelEnv))
	}

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}

	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}

	if cfg.core == nil {
		cfg.core = &consoleCore{}
	}
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	xl := &xLogger{}
	cfg.apply(xl)

	core, err := cfg.core.build(
		xl.level,
		xl.encoder,
		xl.writer,
		cfg.lvlEncoder,
		cfg.tsEncoder,
	)
	if err != nil {
		panic(err)
	}

	// Disable zap logger error stack.
	l := zap.New(
		core,
		zap.AddCallerSkip(1),
		zap.AddCaller(),
	)
	if len(cfg.name) > 0 {
		l = l.Named(cfg.name)
	}
	xl.logger.Store(l)
	return xl
}

// NewNopXLogger drops everything.
func NewNopXLogger() XLogger {
	xl := &xLogger{level: zapcore.InvalidLevel}
	xl.logger.Store(zap.NewNop())
	return xl
}

func WithXLoggerWriter(w LogOutWriterType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w >= _writerMax {
			return infra.NewErrorStack("unknown xlogger writer")
		}
		cfg.writerType = &w
		return nil
	}
}

func WithXLoggerEncoder(logEnc LogEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("unknown xlogger encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl LogLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// WithXLoggerName names the component, i.e. "rbtree".
func WithXLoggerName(name string) XLoggerOption {
	return func(cfg *loggerCfg) error {
		cfg.name = name
		return nil
	}
}

// WithXLoggerCore replaces the console core by the given one.
// Encoder and writer options are ignored then.
func WithXLoggerCore(core zapcore.Core) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if core == nil {
			return infra.NewErrorStack("nil xlogger core")
		}
		cfg.core = &injectedCore{core: core}
		return nil
	}
}

func WithXLoggerConsoleCore() XLoggerOption {
	return func(cfg *loggerCfg) error {
		cfg.core = &consoleCore{}
		return nil
	}
}
