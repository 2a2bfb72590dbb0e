// internal/game/engine.go
//
// Pure game rules:
//   - Scramble: uniform random permutation of a word's characters.
//   - Check:    case-insensitive comparison of a guess against the answer.
//
// Notes:
//   - Scramble may return the word unchanged; a fair shuffle sometimes does.
//   - Check lowercases the guess only; the answer is lowercase already.
package game

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand/v2"
	"strings"
)

// Scramble returns a random permutation of word's runes.
func Scramble(word string) string {
	r := []rune(word)
	mrand.Shuffle(len(r), func(i, j int) { r[i], r[j] = r[j], r[i] })
	return string(r)
}

// Check reports whether guess matches word and returns the message to show.
// The guess is not trimmed: " apple" does not match "apple".
func Check(guess, word string) (bool, string) {
	if strings.ToLower(guess) == word {
		return true, MessageCorrect
	}
	return false, MessageIncorrect
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
