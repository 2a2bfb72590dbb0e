// internal/game/session.go
//
// Session is the per-player round holder.
//
// Word and hint lookups are slow network calls, so a player can ask for a
// new word before the previous lookup returned. Every round therefore gets a
// monotonically increasing token: Begin hands one out, and Start/SetHint only
// apply a result whose token is still current. Late results are dropped.

package game

import (
	"strings"
	"sync"
)

// Session holds one player's current round. Safe for concurrent use.
type Session struct {
	ID string

	mu    sync.Mutex
	token uint64
	round Round
}

// NewSession returns an empty session waiting for its first word.
func NewSession(id string) *Session {
	return &Session{ID: id, round: Round{State: StateLoading}}
}

// Begin starts loading a new round and returns its token.
// The guess and message are cleared right away; the previous scramble stays
// visible until the new word arrives.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	s.round.Guess = ""
	s.round.Message = ""
	s.round.State = StateLoading
	return s.token
}

// Start installs word as the round identified by token.
// It returns the new round, the round it replaced, and false if token is
// stale (a newer Begin happened meanwhile), in which case nothing changes and
// the current round is returned.
func (s *Session) Start(token uint64, word string) (Round, Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return s.round, Round{}, false
	}
	prev := s.round
	word = strings.ToLower(word)
	s.round = Round{
		ID:        randomID(),
		Token:     token,
		Word:      word,
		Scrambled: Scramble(word),
		State:     StateReady,
	}
	return s.round, prev, true
}

// Guess checks guess against the current word.
func (s *Session) Guess(guess string) (GuessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round.Word == "" {
		return GuessResult{View: s.round.View()}, ErrNoRound
	}
	ok, msg := Check(guess, s.round.Word)
	s.round.Guess = guess
	s.round.Message = msg
	s.round.Attempts++
	justSolved := ok && !s.round.Solved
	if ok {
		s.round.Solved = true
		s.round.State = StateCorrect
	} else {
		s.round.State = StateIncorrect
	}
	return GuessResult{
		View:       s.round.View(),
		Correct:    ok,
		JustSolved: justSolved,
		Round:      s.round,
	}, nil
}

// HintTarget returns the token and word a hint should be fetched for.
// It fails with ErrLoading between Begin and the matching Start.
func (s *Session) HintTarget() (uint64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round.Word == "" {
		return 0, "", ErrNoRound
	}
	if s.round.State == StateLoading || s.round.Token != s.token {
		return 0, "", ErrLoading
	}
	return s.round.Token, s.round.Word, nil
}

// SetHint stores hint on the round identified by token.
// Returns false, leaving the round untouched, if that round is gone.
func (s *Session) SetHint(token uint64, hint string) (View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.round.Token || token != s.token {
		return s.round.View(), false
	}
	s.round.Hint = hint
	s.round.Hinted = true
	return s.round.View(), true
}

// Snapshot returns the current view.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.View()
}

// Current returns a copy of the current round, answer included.
func (s *Session) Current() Round {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}
