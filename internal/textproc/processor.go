package textproc

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

var (
	nonAlphaPattern   = regexp.MustCompile(`[^a-z\s]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Options configures a Processor.
type Options struct {
	// StopwordsPath names an optional file of additional stopwords, one per
	// line. An unreadable file is logged and ignored.
	StopwordsPath string
	// ExtraStopwords are appended to the stopword set directly.
	ExtraStopwords []string
	// MinTokenLength drops shorter tokens during filtering. Defaults to 2.
	MinTokenLength int
	// POS configures the part-of-speech filter. Nil means disabled.
	POS *POSFilter
}

// Processor cleans, tokenizes, and filters raw text into countable words.
type Processor struct {
	logger    *slog.Logger
	stopwords map[string]struct{}
	minLength int
	pos       *POSFilter
}

// NewProcessor builds a processor with the default English stopword set plus
// any configured additions.
func NewProcessor(opts Options, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "textproc")

	stopwords := defaultStopwordSet()
	if opts.StopwordsPath != "" {
		words, err := loadStopwordFile(opts.StopwordsPath)
		if err != nil {
			logger.Warn("custom stopword file unreadable", "path", opts.StopwordsPath, "error", err)
		} else {
			for _, word := range words {
				stopwords[word] = struct{}{}
			}
			logger.Debug("custom stopwords loaded", "path", opts.StopwordsPath, "count", len(words))
		}
	}
	for _, word := range opts.ExtraStopwords {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			stopwords[word] = struct{}{}
		}
	}

	minLength := opts.MinTokenLength
	if minLength <= 0 {
		minLength = 2
	}

	return &Processor{
		logger:    logger,
		stopwords: stopwords,
		minLength: minLength,
		pos:       opts.POS,
	}
}

// Clean lowercases text and strips everything but ASCII letters and spaces.
func (p *Processor) Clean(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = nonAlphaPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits cleaned text into word tokens using the prose tokenizer,
// falling back to whitespace splitting if the tokenizer fails.
func (p *Processor) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		p.logger.Warn("tokenizer failed, splitting on whitespace", "error", err)
		return strings.Fields(text)
	}
	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, tok := range docTokens {
		tokens = append(tokens, tok.Text)
	}
	return tokens
}

// RemoveStopwords filters out stopwords, tokens shorter than the configured
// minimum, and tokens containing anything but letters.
func (p *Processor) RemoveStopwords(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lower := strings.ToLower(token)
		if _, stop := p.stopwords[lower]; stop {
			continue
		}
		if len(lower) < p.minLength || !isAlpha(lower) {
			continue
		}
		filtered = append(filtered, lower)
	}
	return filtered
}

// Process runs the complete pipeline: clean, tokenize, remove stopwords, and
// apply the part-of-speech filter when one is configured.
func (p *Processor) Process(text string) []string {
	cleaned := p.Clean(text)
	tokens := p.Tokenize(cleaned)
	tokens = p.RemoveStopwords(tokens)
	if p.pos != nil {
		tokens = p.pos.Filter(tokens)
	}
	return tokens
}

// StopwordCount returns the size of the effective stopword set.
func (p *Processor) StopwordCount() int {
	return len(p.stopwords)
}

// AddStopwords extends the stopword set at runtime.
func (p *Processor) AddStopwords(words []string) {
	for _, word := range words {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			p.stopwords[word] = struct{}{}
		}
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
