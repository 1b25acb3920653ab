package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger takes a logging config and returns a new zap logger writing to
// the log file pointed to by the config and, unless disabled, stdout.
func NewLogger(config *Config) (*zap.Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	encoder, level, err := constructEncoderAndLevel(config)
	if err != nil {
		return nil, fmt.Errorf("constructing log encoder and level: %w", err)
	}

	logFile := zapcore.AddSync(&config.Logger)
	core := zapcore.NewCore(encoder, logFile, level)

	if !config.DisableConsoleOutput {
		console := zapcore.Lock(os.Stdout)
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, console, level))
	}

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func constructEncoderAndLevel(config *Config) (zapcore.Encoder, zapcore.Level, error) {
	zapLevel, err := config.toZapCoreLevel()
	if err != nil {
		return nil, zapLevel, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if config.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if config.EncodeTimeAsRFC3339Nano {
		encoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}

	if config.Debug {
		return zapcore.NewConsoleEncoder(encoderConfig), zapLevel, nil
	}

	return zapcore.NewJSONEncoder(encoderConfig), zapLevel, nil
}
