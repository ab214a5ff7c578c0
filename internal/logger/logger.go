package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Path  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discardLogger()
	logFile *os.File
)

// Setup points the global logger at cfg.Path. On failure the logger keeps
// discarding everything, so the console output stays clean either way.
func Setup(cfg Config) (func() error, error) {
	if cfg.Path == "" {
		setDiscard()
		return nil, errors.New("log path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		setDiscard()
		return nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		setDiscard()
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		l.SetLevel(logrus.DebugLevel)
		l.SetReportCaller(true)
	}

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = l
	logFile = f
	mu.Unlock()

	l.WithField("debug", cfg.Debug).Info("logger initialized")

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		// a later Setup already closed f
		if logFile != f {
			return nil
		}
		logFile = nil
		global = discardLogger()
		return f.Close()
	}

	return cleanup, nil
}

func L() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = discardLogger()
	logFile = nil
}
