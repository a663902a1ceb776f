package visualize

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"

	"wordfreq/internal/freq"
)

// CloudOptions configures word cloud rendering.
type CloudOptions struct {
	MaxWords   int
	WidthPx    int
	HeightPx   int
	Background string
	Palette    string
}

var fontOnce struct {
	sync.Once
	path string
	err  error
}

// fontFile materializes the embedded Go font as a file, since the word cloud
// layout engine loads fonts by path.
func fontFile() (string, error) {
	fontOnce.Do(func() {
		path := filepath.Join(os.TempDir(), "wordfreq-goregular.ttf")
		if info, err := os.Stat(path); err == nil && info.Size() == int64(len(goregular.TTF)) {
			fontOnce.path = path
			return
		}
		if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
			fontOnce.err = fmt.Errorf("write font file: %w", err)
			return
		}
		fontOnce.path = path
	})
	return fontOnce.path, fontOnce.err
}

// WordCloud renders up to MaxWords words sized by frequency to a PNG file.
func (r *Renderer) WordCloud(path string, table *freq.Table, opts CloudOptions) error {
	entries := table.MostCommon(defaultTopN(opts.MaxWords, 100))
	if len(entries) == 0 {
		return ErrNoData
	}

	palette := opts.Palette
	if palette == "" {
		palette = "viridis"
	}
	colors, err := paletteColors(palette)
	if err != nil {
		return err
	}
	background, err := backgroundColor(opts.Background)
	if err != nil {
		return err
	}
	font, err := fontFile()
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Word] = entry.Count
	}

	width := opts.WidthPx
	if width <= 0 {
		width = 800
	}
	height := opts.HeightPx
	if height <= 0 {
		height = 600
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(font),
		wordclouds.Width(width),
		wordclouds.Height(height),
		wordclouds.Colors(colors),
		wordclouds.BackgroundColor(background),
		wordclouds.FontMaxSize(height/4),
		wordclouds.FontMinSize(10),
		wordclouds.RandomPlacement(false),
	)
	img := cloud.Draw()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}

	r.logger.Info("word cloud rendered", "path", path, "words", len(entries))
	return nil
}
