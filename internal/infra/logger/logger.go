package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where the log file lives and which tz data the process reads.
type Config struct {
	// Dir holds the log file. It is created when missing; empty means .zoneinfo/logs.
	Dir   string
	Debug bool
	// Data labels every record, such as "bundle" or a TZDIR path.
	Data string
}

// FileName is the log file written inside Config.Dir.
const FileName = "zoneinfo.log"

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
)

func discard() *slog.Logger { return slog.New(slog.NewJSONHandler(io.Discard, nil)) }

// Setup installs a JSON logger appending to Dir/zoneinfo.log and returns its cleanup.
// Record times are written in UTC. On failure the global logger discards everything.
func Setup(cfg Config) (func() error, error) {
	dir := filepath.Join(".zoneinfo", "logs")
	if cfg.Dir != "" {
		dir = filepath.Clean(cfg.Dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if cfg.Debug {
		opts.Level, opts.AddSource = slog.LevelDebug, true
	}
	data := cfg.Data
	if data == "" {
		data = "bundle"
	}
	l := slog.New(slog.NewJSONHandler(f, opts)).With("tzdata", data)

	mu.Lock()
	global, logFile = l, f
	mu.Unlock()
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		var err error
		if logFile != nil {
			err = logFile.Close()
		}
		global, logFile = discard(), nil
		return err
	}, nil
}

// L returns the process logger. It discards output until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the file the logger writes to, or "" when it discards.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil {
		return ""
	}
	return logFile.Name()
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global, logFile = discard(), nil
}
