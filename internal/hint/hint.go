// internal/hint/hint.go
//
// Hint lookup for the current word.
//
// Order:
//  1. Dictionary:  GET <dictionary URL>/<word>  → first non-empty definition.
//  2. Synonyms:    GET <synonym URL>?ml=<word>  → "Similar word: X".
//  3. Otherwise NoHint.
//
// The two calls are sequential; results are never cached.

package hint

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/upstream"
)

//go:generate mockgen -source=hint.go -destination=../mocks/hint/mock_source.go -package=mock_hint

const (
	// NoHint is returned when neither upstream had anything useful.
	NoHint = "No hint available."

	// SimilarPrefix prefixes a synonym hint.
	SimilarPrefix = "Similar word: "

	DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultSynonymURL    = "https://api.datamuse.com/words"
)

// Source produces a hint for a word. It never fails.
type Source interface {
	Hint(ctx context.Context, word string) string
}

// entry mirrors the subset of the dictionary API response we read.
type entry struct {
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// similar is one element of the means-like response.
type similar struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// APISource looks hints up in the dictionary and synonym APIs.
type APISource struct {
	client        *upstream.Client
	dictionaryURL string
	synonymURL    string
}

// NewAPISource returns an APISource; empty URLs use the public defaults.
func NewAPISource(client *upstream.Client, dictionaryURL, synonymURL string) *APISource {
	if dictionaryURL == "" {
		dictionaryURL = DefaultDictionaryURL
	}
	if synonymURL == "" {
		synonymURL = DefaultSynonymURL
	}
	return &APISource{
		client:        client,
		dictionaryURL: strings.TrimRight(dictionaryURL, "/"),
		synonymURL:    synonymURL,
	}
}

// Hint returns a definition, a similar word, or NoHint.
func (s *APISource) Hint(ctx context.Context, word string) string {
	if def := s.definition(ctx, word); def != "" {
		return def
	}
	if syn := s.synonym(ctx, word); syn != "" {
		return SimilarPrefix + syn
	}
	return NoHint
}

func (s *APISource) definition(ctx context.Context, word string) string {
	var entries []entry
	if err := s.client.GetJSON(ctx, s.dictionaryURL+"/"+url.PathEscape(word), nil, &entries); err != nil {
		log.Debug().Err(err).Str("word", word).Msg("no dictionary definition")
		return ""
	}
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if def := strings.TrimSpace(d.Definition); def != "" {
					return def
				}
			}
		}
	}
	return ""
}

func (s *APISource) synonym(ctx context.Context, word string) string {
	var list []similar
	if err := s.client.GetJSON(ctx, s.synonymURL, map[string]string{"ml": word}, &list); err != nil {
		log.Warn().Err(err).Str("word", word).Msg("synonym lookup failed")
		return ""
	}
	for _, sim := range list {
		w := strings.TrimSpace(sim.Word)
		if w != "" && !strings.EqualFold(w, word) {
			return w
		}
	}
	return ""
}
