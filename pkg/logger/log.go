package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFile = "./logs/app.log"

// NewLogger пишет в консоль и в ./logs/app.log.
func NewLogger() *zap.Logger {
	outputs := []string{"stdout"}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err == nil {
		outputs = append(outputs, logFile)
	}
	return build(zap.DebugLevel, outputs)
}

// NewCLILogger - для консольного клиента: только предупреждения и ошибки, в stderr,
// чтобы не мешать интерактивному вводу.
func NewCLILogger(verbose bool) *zap.Logger {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	return build(level, []string{"stderr"})
}

func build(level zapcore.Level, outputs []string) *zap.Logger {
	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}
