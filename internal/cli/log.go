package cli

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFilePath returns the path to the log file.
// If CLASSTREE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.classtree/logs/classtree.log
func logFilePath() string {
	if customPath := os.Getenv("CLASSTREE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "classtree.log"
	}

	return filepath.Join(homeDir, ".classtree", "logs", "classtree.log")
}

// newLogger builds the file logger shared by commands and the editor.
// Console output stays on the Console type; the log file keeps the
// structured trace, rotated so it never grows past a few megabytes.
func newLogger(verbose bool) (*zap.Logger, error) {
	path := logFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), level)

	return zap.New(core), nil
}
