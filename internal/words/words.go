// internal/words/words.go
//
// Word acquisition for new rounds.
//
// Sources:
//   - APISource:  GET <random-word URL> → ["word"], element 0 is the word.
//   - ListSource: uniform pick from a local list (see list.go).
//
// Contract shared by every Source: Random never fails. Any network, status or
// parse problem yields Fallback ("default"), logged at warn level.

package words

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/upstream"
)

//go:generate mockgen -source=words.go -destination=../mocks/words/mock_source.go -package=mock_words

// Fallback is returned whenever no word could be obtained.
const Fallback = "default"

// DefaultRandomURL is the public random-word endpoint.
const DefaultRandomURL = "https://random-word-api.herokuapp.com/word"

// Source produces the word for a new round.
type Source interface {
	Random(ctx context.Context) string
}

// APISource fetches words from a random-word HTTP API.
type APISource struct {
	client *upstream.Client
	url    string
}

// NewAPISource returns a source backed by url (DefaultRandomURL if empty).
func NewAPISource(client *upstream.Client, url string) *APISource {
	if url == "" {
		url = DefaultRandomURL
	}
	return &APISource{client: client, url: url}
}

// Random returns a lowercase word or Fallback.
func (s *APISource) Random(ctx context.Context) string {
	var list []string
	if err := s.client.GetJSON(ctx, s.url, nil, &list); err != nil {
		log.Warn().Err(err).Str("url", s.url).Msg("random word fetch failed; using fallback")
		return Fallback
	}
	if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
		log.Warn().Str("url", s.url).Msg("random word API returned no words; using fallback")
		return Fallback
	}
	return strings.ToLower(strings.TrimSpace(list[0]))
}
