// internal/game/types.go
//
// Core type definitions for a word-scramble round.
// Defines:
//   - State: where a round is in its lifecycle (loading/ready/correct/incorrect).
//   - Round: full server-side state of one round, including the answer.
//   - View:  what a player may see of a round (never the answer).

package game

import "errors"

// State is the coarse lifecycle position of the current round.
//
//	loading → ready → correct | incorrect
//
// "Next word" moves any state back to loading. Checking again from
// correct/incorrect is allowed.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateCorrect   State = "correct"
	StateIncorrect State = "incorrect"
)

// Fixed player-facing messages.
const (
	MessageCorrect   = "🎉 Correct! Well done."
	MessageIncorrect = "❌ Incorrect! Try again."
)

// ErrNoRound is returned when an action needs a word but none has arrived yet.
var ErrNoRound = errors.New("no round in progress")

// ErrLoading is returned for a hint request while the next word is loading.
var ErrLoading = errors.New("round is loading")

// Round holds the state of a single round.
type Round struct {
	ID        string // Random hex identifier, used for persistence.
	Token     uint64 // Session-scoped sequence number of this round.
	Word      string // The answer (always lowercase).
	Scrambled string // Permutation of Word shown to the player.
	Guess     string // Last raw guess.
	Hint      string // Empty until requested.
	Message   string // Result of the last check, or empty.
	State     State
	Attempts  int  // Number of checks made this round.
	Solved    bool // True once any check was correct.
	Hinted    bool // True once a hint was delivered.
}

// View is the player-visible projection of a Round.
type View struct {
	Token     uint64 `json:"round"`
	State     State  `json:"state"`
	Scrambled string `json:"scrambled"`
	Guess     string `json:"guess,omitempty"`
	Hint      string `json:"hint"`
	Message   string `json:"message"`
	Attempts  int    `json:"attempts"`
}

// View projects r to what the player may see.
func (r Round) View() View {
	return View{
		Token:     r.Token,
		State:     r.State,
		Scrambled: r.Scrambled,
		Guess:     r.Guess,
		Hint:      r.Hint,
		Message:   r.Message,
		Attempts:  r.Attempts,
	}
}

// GuessResult is returned by Session.Guess.
type GuessResult struct {
	View       View
	Correct    bool
	JustSolved bool  // First correct check of this round.
	Round      Round // Snapshot after the check, for persistence.
}
