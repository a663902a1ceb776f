package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/history"
	"wordfreq/internal/logging"
	"wordfreq/internal/textproc"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// ensureLogger derives a logger from the loaded config. Commands fall back to
// a no-op logger when configuration failed; the config error surfaces through
// ensureConfig instead.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// newProcessor builds the text processor from config, with the stopword file
// optionally overridden per invocation.
func (c *commandContext) newProcessor(stopwordsOverride string) (*textproc.Processor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := c.ensureLogger()

	stopwordsPath := cfg.Analysis.StopwordsPath
	if strings.TrimSpace(stopwordsOverride) != "" {
		expanded, err := config.ExpandPath(stopwordsOverride)
		if err != nil {
			return nil, err
		}
		stopwordsPath = expanded
	}

	opts := textproc.Options{
		StopwordsPath:  stopwordsPath,
		ExtraStopwords: cfg.Analysis.ExtraStopwords,
		MinTokenLength: cfg.Analysis.MinTokenLength,
	}
	if cfg.Analysis.POSEnabled {
		opts.POS = textproc.NewPOSFilter(true, cfg.Analysis.POSAllowedTags, logger)
	}
	return textproc.NewProcessor(opts, logger), nil
}

// withStore opens the history database, runs fn, and closes it.
func (c *commandContext) withStore(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
