package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/sadopc/productive/internal/config"
	"github.com/sadopc/productive/internal/insight"
	"github.com/sadopc/productive/internal/state"
	"github.com/sadopc/productive/internal/store"
)

// env is what every command needs: configuration, a file logger and the
// state container backed by the SQLite store.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	store  *store.Store
	state  *state.Container

	logFile io.Closer
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locate config: %w", err)
		}
		path = p
	}
	return config.Load(path)
}

func openEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}

	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		if path, err = store.DefaultDBPath(); err != nil {
			logFile.Close()
			return nil, fmt.Errorf("locate database: %w", err)
		}
	}

	s, err := store.New(path)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("opened database", "path", path)

	return &env{
		cfg:     cfg,
		logger:  logger,
		store:   s,
		state:   state.Open(s, state.WithLogger(logger)),
		logFile: logFile,
	}, nil
}

// openLogger writes to the configured log file, or productive.log in the
// config directory. The terminal belongs to the UI.
func openLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, nil, fmt.Errorf("locate log dir: %w", err)
		}
		path = filepath.Join(dir, "productive.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "productive",
	})
	return logger, f, nil
}

func (e *env) provider(ctx context.Context) insight.Provider {
	return insight.NewProvider(ctx, e.cfg.Gemini, e.logger)
}

func (e *env) Close() error {
	err := e.store.Close()
	e.logFile.Close()
	return err
}
