package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Document is one loaded text file.
type Document struct {
	Name    string
	Path    string
	Content string
}

// Corpus holds the documents loaded from a single directory scan.
type Corpus struct {
	Documents []Document
	sourceDir string
}

// Loader reads .txt files from a directory.
type Loader struct {
	logger *slog.Logger
}

// NewLoader constructs a loader. A nil logger disables logging.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger.With("component", "corpus")}
}

// Load scans dir (non-recursively) for .txt files and reads each one.
// Files are read as UTF-8 first; content that is not valid UTF-8 is retried
// as GBK. Files that fail both decodes are skipped with a warning rather than
// failing the whole scan.
func (l *Loader) Load(ctx context.Context, dir string) (*Corpus, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan directory: %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan directory: %w", err)
	}

	corpus := &Corpus{sourceDir: dir}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := readTextFile(path)
		if err != nil {
			l.logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		corpus.Documents = append(corpus.Documents, Document{
			Name:    entry.Name(),
			Path:    path,
			Content: content,
		})
		l.logger.Debug("loaded file", "path", path, "bytes", len(content))
	}

	sort.Slice(corpus.Documents, func(i, j int) bool {
		return corpus.Documents[i].Name < corpus.Documents[j].Name
	})

	l.logger.Info("directory scanned", "dir", dir, "files", len(corpus.Documents))
	return corpus, nil
}

// readTextFile reads a file as UTF-8 and falls back to GBK when the raw bytes
// are not valid UTF-8.
func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decode as GBK: %w", err)
	}
	return string(decoded), nil
}

// MergedContent returns all document contents joined by newlines.
func (c *Corpus) MergedContent() string {
	if c == nil || len(c.Documents) == 0 {
		return ""
	}
	parts := make([]string, len(c.Documents))
	for i, doc := range c.Documents {
		parts[i] = doc.Content
	}
	return strings.Join(parts, "\n")
}

// FileCount returns the number of loaded documents.
func (c *Corpus) FileCount() int {
	if c == nil {
		return 0
	}
	return len(c.Documents)
}

// Names returns the loaded file names in lexical order.
func (c *Corpus) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Documents))
	for i, doc := range c.Documents {
		names[i] = doc.Name
	}
	return names
}

// SourceDir returns the directory this corpus was loaded from.
func (c *Corpus) SourceDir() string {
	if c == nil {
		return ""
	}
	return c.sourceDir
}
