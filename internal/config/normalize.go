package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeAnalysis(); err != nil {
		return err
	}
	c.normalizeChart()
	c.normalizeWordCloud()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAnalysis() error {
	if c.Analysis.MinTokenLength <= 0 {
		c.Analysis.MinTokenLength = defaultMinTokenLength
	}
	if c.Analysis.TopWords <= 0 {
		c.Analysis.TopWords = defaultTopWords
	}
	if path := strings.TrimSpace(c.Analysis.StopwordsPath); path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return fmt.Errorf("analysis.stopwords_path: %w", err)
		}
		c.Analysis.StopwordsPath = expanded
	} else {
		c.Analysis.StopwordsPath = ""
	}
	trimmed := make([]string, 0, len(c.Analysis.ExtraStopwords))
	for _, word := range c.Analysis.ExtraStopwords {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			trimmed = append(trimmed, word)
		}
	}
	c.Analysis.ExtraStopwords = trimmed
	tags := make([]string, 0, len(c.Analysis.POSAllowedTags))
	for _, tag := range c.Analysis.POSAllowedTags {
		if tag = strings.ToUpper(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	c.Analysis.POSAllowedTags = tags
	return nil
}

func (c *Config) normalizeChart() {
	if c.Chart.WidthPx <= 0 {
		c.Chart.WidthPx = defaultChartWidthPx
	}
	if c.Chart.HeightPx <= 0 {
		c.Chart.HeightPx = defaultChartHeightPx
	}
	if c.Chart.TopWords <= 0 {
		c.Chart.TopWords = defaultChartTopWords
	}
	if c.Chart.HorizontalTopWords <= 0 {
		c.Chart.HorizontalTopWords = defaultChartHorizontalTop
	}
	if strings.TrimSpace(c.Chart.Palette) == "" {
		c.Chart.Palette = defaultPalette
	}
	c.Chart.Palette = strings.ToLower(strings.TrimSpace(c.Chart.Palette))
}

func (c *Config) normalizeWordCloud() {
	if c.WordCloud.WidthPx <= 0 {
		c.WordCloud.WidthPx = defaultCloudWidthPx
	}
	if c.WordCloud.HeightPx <= 0 {
		c.WordCloud.HeightPx = defaultCloudHeightPx
	}
	if c.WordCloud.MaxWords <= 0 {
		c.WordCloud.MaxWords = defaultCloudMaxWords
	}
	if strings.TrimSpace(c.WordCloud.Background) == "" {
		c.WordCloud.Background = defaultCloudBackground
	}
	c.WordCloud.Background = strings.ToLower(strings.TrimSpace(c.WordCloud.Background))
	if strings.TrimSpace(c.WordCloud.Palette) == "" {
		c.WordCloud.Palette = defaultPalette
	}
	c.WordCloud.Palette = strings.ToLower(strings.TrimSpace(c.WordCloud.Palette))
}

func (c *Config) normalizeLogging() {
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}
