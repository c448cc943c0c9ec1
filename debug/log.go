package debug

import (
	"strings"
	"sync"

	"github.com/signadot/jsondoc/ir"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu  sync.Mutex
	logger *zap.SugaredLogger
)

func sugar() *zap.SugaredLogger {
	logMu.Lock()
	defer logMu.Unlock()
	if logger != nil {
		return logger
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
	return logger
}

// SetLogger replaces the logger used by Logf, returning the previous one.
func SetLogger(l *zap.Logger) *zap.SugaredLogger {
	logMu.Lock()
	defer logMu.Unlock()
	prev := logger
	logger = l.Sugar()
	return prev
}

// Logf logs a debug message. Node arguments are rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if x, ok := a.(*ir.Node); ok {
			args[i] = nodeString(x)
		}
	}
	sugar().Debugf(strings.TrimSuffix(msg, "\n"), args...)
}

