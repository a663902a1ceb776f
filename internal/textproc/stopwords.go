package textproc

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

// Default English stopword list, one word per line.
//
//go:embed stopwords_en.txt
var defaultStopwords string

func defaultStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, 200)
	for _, word := range strings.Fields(defaultStopwords) {
		set[word] = struct{}{}
	}
	return set
}

// loadStopwordFile reads additional stopwords from a file, one word per line.
// Blank lines and lines starting with # are ignored.
func loadStopwordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
