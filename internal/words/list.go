// internal/words/list.go
//
// Offline word source.
//
// Loading (NewListSource):
//  1. If path is set, read one word per line from that file.
//  2. Otherwise use the list embedded in the assets package.
//
// Lines are trimmed and lowercased; blanks, "#" comments and anything that is
// not purely a–z are skipped.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordscramble/assets"
)

// ListSource picks words from an in-memory list.
type ListSource struct {
	words []string
}

// NewListSource loads the list from path, or the embedded list when path is empty.
func NewListSource(path string) (*ListSource, error) {
	var (
		list []string
		err  error
	)
	if path != "" {
		list, err = readWordFile(path)
	} else {
		list, err = assets.WordList()
		list = normalize(list)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	return &ListSource{words: list}, nil
}

// NewListSourceFrom wraps an existing list; entries are normalized.
func NewListSourceFrom(list []string) *ListSource {
	return &ListSource{words: normalize(list)}
}

// Random returns a cryptographically random word, or Fallback for an empty list.
func (s *ListSource) Random(context.Context) string {
	if len(s.words) == 0 {
		return Fallback
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.words))))
	if err != nil {
		return Fallback
	}
	return s.words[n.Int64()]
}

// Words returns the loaded list.
func (s *ListSource) Words() []string { return s.words }

// Len reports how many words are loaded.
func (s *ListSource) Len() int { return len(s.words) }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return normalize(lines), sc.Err()
}

func normalize(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
