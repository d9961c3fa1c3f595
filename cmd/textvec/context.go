package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	vectorizer "github.com/samuel/go-vectorizer"
	"github.com/samuel/go-vectorizer/dataset"
	"github.com/samuel/go-vectorizer/internal/config"
	"github.com/samuel/go-vectorizer/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return logger.With(slog.String("command", cmd.Name())), nil
}

// vectorizer builds a FrequencyVectorizer from the [vectorizer] section after
// applying command line overrides.
func (c *commandContext) vectorizer(cmd *cobra.Command, flags *vectorizerFlags) (*vectorizer.FrequencyVectorizer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	vc := *cfg
	if flags != nil {
		flags.apply(cmd, &vc.Vectorizer)
		if err := vc.Validate(); err != nil {
			return nil, err
		}
	}
	builder, err := vc.Builder(logger)
	if err != nil {
		return nil, err
	}
	return builder.Build(), nil
}

// openStore opens the sqlite document store, creating the database file and
// tables when missing.
func (c *commandContext) openStore() (dataset.Store, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create store directory: %w", err)
	}
	db, err := sql.Open("sqlite3", cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store %s: %w", cfg.Store.Path, err)
	}
	if err := dataset.CreateTables(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create store tables: %w", err)
	}
	store, err := dataset.NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return store, db.Close, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
