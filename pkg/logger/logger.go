package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init builds the process-wide logger for the given environment.
// "production" logs JSON at info level, everything else logs colored console output at debug.
func Init(env string) {
	var cfg zap.Config
	switch env {
	case "production", "prod":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		l = zap.NewExample()
	}

	Set(l)
}

// Set replaces the process-wide logger. Tests use it with zaptest or observer loggers.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l.Sugar()
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log.Desugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	current().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered entries; call it before exit.
func Sync() {
	_ = current().Sync()
}
