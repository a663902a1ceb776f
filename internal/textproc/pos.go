package textproc

import (
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// TaggedToken pairs a token with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// POSFilter keeps only tokens whose part-of-speech tag is in an allowed set.
// It is a deliberate pass-through when disabled, when no tags are configured,
// or when tagging fails: filtering is an optional refinement, never a reason
// to lose a run.
type POSFilter struct {
	enabled bool
	allowed map[string]struct{}
	logger  *slog.Logger
}

// NewPOSFilter constructs a filter for the given tags. Common tags: NN, NNS,
// NNP, NNPS (nouns); VB, VBD, VBG, VBN, VBP, VBZ (verbs); JJ, JJR, JJS
// (adjectives); RB, RBR, RBS (adverbs).
func NewPOSFilter(enabled bool, tags []string, logger *slog.Logger) *POSFilter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	allowed := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag = strings.ToUpper(strings.TrimSpace(tag)); tag != "" {
			allowed[tag] = struct{}{}
		}
	}
	return &POSFilter{
		enabled: enabled,
		allowed: allowed,
		logger:  logger.With("component", "pos"),
	}
}

// Enabled reports whether the filter is active.
func (f *POSFilter) Enabled() bool {
	return f != nil && f.enabled && len(f.allowed) > 0
}

// Filter returns the tokens whose tag is allowed. Input is returned unchanged
// when the filter is inactive or tagging fails.
func (f *POSFilter) Filter(tokens []string) []string {
	if !f.Enabled() || len(tokens) == 0 {
		return tokens
	}
	tagged, err := f.Tags(tokens)
	if err != nil {
		f.logger.Warn("tagging failed, keeping all tokens", "error", err)
		return tokens
	}
	filtered := make([]string, 0, len(tagged))
	for _, tt := range tagged {
		if _, ok := f.allowed[tt.Tag]; ok {
			filtered = append(filtered, tt.Text)
		}
	}
	return filtered
}

// Tags runs the prose tagger over the tokens.
func (f *POSFilter) Tags(tokens []string) ([]TaggedToken, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "), prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	docTokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(docTokens))
	for _, tok := range docTokens {
		tagged = append(tagged, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}

// AllowedTags returns a copy of the allowed tag set.
func (f *POSFilter) AllowedTags() []string {
	tags := make([]string, 0, len(f.allowed))
	for tag := range f.allowed {
		tags = append(tags, tag)
	}
	return tags
}
