package config

import (
	"errors"
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateChart(); err != nil {
		return err
	}
	if err := c.validateWordCloud(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.MinTokenLength > 16 {
		return errors.New("analysis.min_token_length is unreasonably large (max 16)")
	}
	if c.Analysis.StopwordsPath != "" {
		info, err := os.Stat(c.Analysis.StopwordsPath)
		if err != nil {
			return fmt.Errorf("analysis.stopwords_path: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("analysis.stopwords_path %q is a directory", c.Analysis.StopwordsPath)
		}
	}
	return nil
}

func (c *Config) validateChart() error {
	if c.Chart.WidthPx > 10000 || c.Chart.HeightPx > 10000 {
		return errors.New("chart dimensions must be at most 10000px")
	}
	return nil
}

func (c *Config) validateWordCloud() error {
	if c.WordCloud.WidthPx > 10000 || c.WordCloud.HeightPx > 10000 {
		return errors.New("wordcloud dimensions must be at most 10000px")
	}
	if c.WordCloud.MaxWords > 1000 {
		return errors.New("wordcloud.max_words must be at most 1000")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
