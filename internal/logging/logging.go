package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger at level. Output goes to path when set,
// otherwise to stderr. The returned close func flushes and releases the file.
func New(level, path string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	ws := zapcore.Lock(os.Stderr)
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		ws = zapcore.AddSync(f)
		closeFn = func() { _ = f.Close() }
	}

	logger := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), ws, lvl))
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}

// ForBoard returns a logger safe to use while the full-screen board owns the
// terminal: the file logger when path is set, otherwise a no-op.
func ForBoard(level, path string) (*zap.Logger, func(), error) {
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}
	return New(level, path)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeCaller = nil
	cfg.CallerKey = ""
	return cfg
}
