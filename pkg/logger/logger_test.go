package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()

	log, err := New(filepath.Join(dir, "logs", "booking_app_{date}.log"), "info")
	require.NoError(t, err)

	log.Debug("hidden %d", 1)
	log.Info("reservation committed for %s", "ACME")
	require.NoError(t, log.Close())

	path := filepath.Join(dir, "logs", "booking_app_"+time.Now().Format("20060102")+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "INFO - reservation committed for ACME")
	assert.False(t, strings.Contains(content, "hidden"))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func TestNew_SwitchesFileAtMidnight(t *testing.T) {
	dir := t.TempDir()
	clock := &fakeClock{now: time.Date(2025, 1, 15, 23, 59, 0, 0, time.Local)}

	log, err := newLogger(filepath.Join(dir, "booking_app_{date}.log"), "info", clock.Now)
	require.NoError(t, err)

	log.Info("before midnight")
	clock.Set(time.Date(2025, 1, 16, 0, 1, 0, 0, time.Local))
	log.Info("after midnight")
	require.NoError(t, log.Close())

	first, err := os.ReadFile(filepath.Join(dir, "booking_app_20250115.log"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "booking_app_20250116.log"))
	require.NoError(t, err)

	assert.Contains(t, string(first), "before midnight")
	assert.NotContains(t, string(first), "after midnight")
	assert.Contains(t, string(second), "after midnight")
	assert.NotContains(t, string(second), "before midnight")
}

func TestNew_FixedPathIsOpenedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking_app.log")
	clock := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)}

	log, err := newLogger(path, "info", clock.Now)
	require.NoError(t, err)

	log.Info("first")
	clock.Set(clock.Now().Add(24 * time.Hour))
	log.Info("second")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}
