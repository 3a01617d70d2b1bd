package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DatePlaceholder is replaced with the current date (YYYYMMDD) in the log file path
const DatePlaceholder = "{date}"

// Logger printf-style logger used across the service
type Logger struct {
	sugar *zap.SugaredLogger
	out   *dailyFile
}

// New creates a logger writing to file with the given minimum level.
// An empty file writes to stdout. "{date}" in the path gives one file per day,
// switched over at midnight without a restart.
func New(file string, level string) (*Logger, error) {
	return newLogger(file, level, time.Now)
}

func newLogger(file string, level string, now func() time.Time) (*Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.ConsoleSeparator = " - "

	var (
		sink zapcore.WriteSyncer
		out  *dailyFile
	)

	if file == "" {
		sink = zapcore.Lock(os.Stdout)
	} else {
		daily, err := newDailyFile(file, now)
		if err != nil {
			return nil, err
		}
		sink = daily
		out = daily
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, lvl)

	return &Logger{
		sugar: zap.New(core).Sugar(),
		out:   out,
	}, nil
}

// NewNop creates a logger that discards everything (for tests)
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error пишет ошибку
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.out != nil {
		return l.out.Close()
	}
	return nil
}
