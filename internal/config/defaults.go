package config

const (
	defaultDataDir            = "~/.local/share/wordfreq"
	defaultOutputDir          = "~/wordfreq"
	defaultLogDir             = "~/.local/share/wordfreq/logs"
	defaultMinTokenLength     = 2
	defaultTopWords           = 100
	defaultChartWidthPx       = 1200
	defaultChartHeightPx      = 800
	defaultChartTopWords      = 20
	defaultChartHorizontalTop = 15
	defaultPalette            = "viridis"
	defaultCloudWidthPx       = 800
	defaultCloudHeightPx      = 600
	defaultCloudMaxWords      = 100
	defaultCloudBackground    = "white"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Analysis: Analysis{
			MinTokenLength: defaultMinTokenLength,
			TopWords:       defaultTopWords,
		},
		Chart: Chart{
			WidthPx:            defaultChartWidthPx,
			HeightPx:           defaultChartHeightPx,
			TopWords:           defaultChartTopWords,
			HorizontalTopWords: defaultChartHorizontalTop,
			Palette:            defaultPalette,
		},
		WordCloud: WordCloud{
			WidthPx:    defaultCloudWidthPx,
			HeightPx:   defaultCloudHeightPx,
			MaxWords:   defaultCloudMaxWords,
			Background: defaultCloudBackground,
			Palette:    defaultPalette,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
