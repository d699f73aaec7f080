package utils

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerOptions struct {
	Path  string    // log directory, "" disables the file sink
	Name  string    // file name without extension
	Debug bool      // console encoding and debug level
	Echo  io.Writer // second sink, defaults to stdout
}

// InitLogger builds the service logger: rotated JSON file + stdout.
func InitLogger(path string, debug bool) (*zap.Logger, error) {
	return NewLogger(LoggerOptions{Path: path, Name: "flight-allocation", Debug: debug})
}

func NewLogger(opts LoggerOptions) (*zap.Logger, error) {
	encoder := newLogEncoder(opts.Debug)

	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	echo := opts.Echo
	if echo == nil {
		echo = os.Stdout
	}
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(echo), level),
	}

	if opts.Path != "" {
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, err
		}
		name := opts.Name
		if name == "" {
			name = "app"
		}
		// File sink dengan rotasi log
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Path, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotated), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func newLogEncoder(debug bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	if debug {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.CallerKey = "caller"
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	if debug {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}
