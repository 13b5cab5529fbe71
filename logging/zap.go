package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the default Logger implementation, backed by a zap core with
// a plain console encoder.
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	fields Fields

	mu sync.Mutex
}

// NewZapLogger creates a console zap logger at InfoLevel.
func NewZapLogger() *ZapLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: "\t",
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)

	return &ZapLogger{
		logger: zap.New(core),
		level:  level,
		fields: make(Fields),
	}
}

func (z *ZapLogger) zapFields(err error, fields []Fields) []zap.Field {
	out := make([]zap.Field, 0, len(z.fields)+8)
	for k, v := range z.fields {
		out = append(out, zap.Any(k, v))
	}
	for _, f := range fields {
		for k, v := range f {
			out = append(out, zap.Any(k, v))
		}
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...Fields) {
	z.logger.Debug(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...Fields) {
	z.logger.Info(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...Fields) {
	z.logger.Warn(msg, z.zapFields(nil, fields)...)
}

func (z *ZapLogger) Error(err error, msg string, fields ...Fields) {
	z.logger.Error(msg, z.zapFields(err, fields)...)
}

// WithFields returns a logger that attaches the given fields to every entry.
func (z *ZapLogger) WithFields(fields Fields) Logger {
	z.mu.Lock()
	defer z.mu.Unlock()

	merged := make(Fields, len(z.fields)+len(fields))
	for k, v := range z.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &ZapLogger{
		logger: z.logger,
		level:  z.level,
		fields: merged,
	}
}

func (z *ZapLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		z.level.SetLevel(zapcore.DebugLevel)
	case InfoLevel:
		z.level.SetLevel(zapcore.InfoLevel)
	case WarnLevel:
		z.level.SetLevel(zapcore.WarnLevel)
	case ErrorLevel:
		z.level.SetLevel(zapcore.ErrorLevel)
	}
}
