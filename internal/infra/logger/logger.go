package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = zerolog.New(io.Discard)
	logFile *os.File
	logPath string
)

// Setup opens <root>/.wenyan/logs/wenyan.log and installs the global
// logger. With Debug set, the level drops to debug and a console
// writer on stderr mirrors the file. The returned cleanup closes the
// file and resets the global logger.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, ".wenyan", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		setDiscard()
		return nil, errors.WithMessage(err, "create log dir")
	}

	path := filepath.Join(dir, "wenyan.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		setDiscard()
		return nil, errors.WithMessage(err, "open log file")
	}

	level := zerolog.InfoLevel
	var w io.Writer = f
	if cfg.Debug {
		level = zerolog.DebugLevel
		w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	l := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	global.Info().Str("path", path).Bool("debug", cfg.Debug).Msg("logger initialized")

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = zerolog.New(io.Discard)
		return cerr
	}

	return cleanup, nil
}

func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = zerolog.New(io.Discard)
	logFile = nil
	logPath = ""
}
