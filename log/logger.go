// Package log builds the zap logger used by the simulator.
package log

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the logger configuration.
type Config struct {
	// Level sets the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`
	// Format is either "json" or "console".
	Format string `yaml:"format"`
	// OutputFile is a path, or "stdout"/"stderr" to log to the console.
	OutputFile string `yaml:"output_file"`
}

// DefaultConfig logs warnings and errors to stderr so that reports on stdout stay clean.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     "console",
		OutputFile: "stderr",
	}
}

// CloseFunc flushes a logger and releases its output file, if it opened one.
type CloseFunc func() error

// New creates a logger from config. An unparsable level falls back to info. The returned CloseFunc must be
// called once the logger is no longer used.
func New(config Config) (*zap.Logger, CloseFunc, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	writeSyncer, file, err := getWriteSyncer(config.OutputFile)
	if err != nil {
		return nil, nil, err
	}

	core := zapcore.NewCore(getEncoder(config.Format), writeSyncer, level)
	logger := zap.New(core, zap.AddCaller()).
		WithOptions(zap.Fields(zap.String("service", "pagesim")))

	closeFunc := func() error {
		if file == nil {
			// Syncing a terminal fails on some platforms.
			_ = logger.Sync()
			return nil
		}
		if err := logger.Sync(); err != nil {
			file.Close()
			return fmt.Errorf("failed to flush log file %s: %w", config.OutputFile, err)
		}
		return file.Close()
	}
	return logger, closeFunc, nil
}

func getEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if strings.ToLower(format) == "console" {
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

// getWriteSyncer also returns the file it opened, nil for the console outputs.
func getWriteSyncer(outputFile string) (zapcore.WriteSyncer, *os.File, error) {
	switch strings.ToLower(outputFile) {
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil, nil
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil, nil
	default:
		f, err := os.OpenFile(outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", outputFile, err)
		}
		return zapcore.AddSync(f), f, nil
	}
}
