package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin structured logger over zap. All methods take a
// context so callers can forward request-scoped values later without
// changing signatures.
type Logger struct {
	zl *zap.Logger
}

var (
	global = &Logger{zl: zap.NewNop()}
	mu     sync.Mutex
)

// Init configures the global logger. level is one of debug, info,
// warn, error, fatal.
func Init(level string, asJSON bool) error {
	mu.Lock()
	defer mu.Unlock()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("logger.Init: unknown level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	global = &Logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}

	return nil
}

// L returns the global logger.
func L() *Logger { return global }

// SetNopLogger replaces the global logger with a no-op one. Intended
// for tests.
func SetNopLogger() {
	mu.Lock()
	defer mu.Unlock()
	global = &Logger{zl: zap.NewNop()}
}

// With returns a child of the global logger with extra fields attached.
func With(fields ...Field) *Logger { return global.With(fields...) }

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.Error(ctx, msg, fields...)
}
