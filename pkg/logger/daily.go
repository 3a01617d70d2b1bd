package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const dayLayout = "20060102"

// dailyFile zapcore.WriteSyncer, который переоткрывает файл при смене даты в "{date}"
type dailyFile struct {
	mu      sync.Mutex
	pattern string
	now     func() time.Time
	path    string
	file    *os.File
}

func newDailyFile(pattern string, now func() time.Time) (*dailyFile, error) {
	d := &dailyFile{pattern: pattern, now: now}
	if err := d.reopen(); err != nil {
		return nil, err
	}
	return d, nil
}

// Write пишет запись в файл текущего дня
func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.reopen(); err != nil {
		return 0, err
	}
	return d.file.Write(p)
}

// Sync сбрасывает текущий файл на диск
func (d *dailyFile) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}
	return d.file.Sync()
}

// Close закрывает текущий файл
func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	d.path = ""
	return err
}

// reopen открывает файл для текущей даты, если путь изменился. Вызывается под mu.
func (d *dailyFile) reopen() error {
	path := strings.ReplaceAll(d.pattern, DatePlaceholder, d.now().Format(dayLayout))
	if d.file != nil && path == d.path {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if d.file != nil {
		_ = d.file.Close()
	}
	d.file = f
	d.path = path
	return nil
}
