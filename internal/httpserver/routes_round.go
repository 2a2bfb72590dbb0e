// internal/httpserver/routes_round.go
//
// Round endpoints, mounted under /api/round:
//   - GET  /api/round        → current round view
//   - POST /api/round/next   → fetch a new word, scramble it, reset guess/message/hint
//   - POST /api/round/guess  → check a guess
//   - POST /api/round/hint   → fetch a hint for the current word
//   - POST /api/round/daily  → start a round with the word of the day
//
// A "next" or "hint" request whose round was superseded while its upstream
// call was in flight answers 409 stale_round and changes nothing.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

func (s *Server) mountRounds(r chi.Router) {
	r.Get("/", s.handleCurrent)
	r.Post("/next", s.handleNext)
	r.Post("/guess", s.handleGuess)
	r.Post("/hint", s.handleHint)
	r.Post("/daily", s.handleDaily)
}

// handleCurrent never creates a session; unknown players see an empty round.
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	sess, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusOK, game.NewSession(id).Snapshot())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	token := sess.Begin()
	word := s.words.Random(r.Context())
	rd, ok := s.startRound(r, sess, token, word)
	if !ok {
		writeError(w, http.StatusConflict, "stale_round")
		return
	}
	writeJSON(w, http.StatusOK, rd.View())
}

type dailyRes struct {
	game.View
	Date string `json:"date"`
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	word := daily.Word(now, s.opts.DailySalt, s.opts.DailyWords)
	if word == "" {
		writeError(w, http.StatusServiceUnavailable, "daily_unavailable")
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	rd, ok := s.startRound(r, sess, sess.Begin(), word)
	if !ok {
		writeError(w, http.StatusConflict, "stale_round")
		return
	}
	writeJSON(w, http.StatusOK, dailyRes{View: rd.View(), Date: daily.DateKey(now)})
}

// startRound installs word for token and persists the transition.
func (s *Server) startRound(r *http.Request, sess *game.Session, token uint64, word string) (game.Round, bool) {
	rd, prev, ok := sess.Start(token, word)
	if !ok {
		log.Debug().Str("session", sess.ID).Uint64("token", token).Msg("discarding stale word")
		return rd, false
	}
	uid := userID(r)
	if prev.Word != "" && !prev.Solved {
		s.recordFinish(r.Context(), sess.ID, prev, uid)
	}
	s.recordStart(r.Context(), sess.ID, rd, uid)
	return rd, true
}

// guessReq/Res payloads for POST /api/round/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Round   uint64     `json:"round"`
	State   game.State `json:"state"`
	Correct bool       `json:"correct"`
	Message string     `json:"message"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	res, err := sess.Guess(req.Guess)
	if errors.Is(err, game.ErrNoRound) {
		writeError(w, http.StatusConflict, "no_round")
		return
	}
	if res.JustSolved {
		s.recordFinish(r.Context(), sess.ID, res.Round, userID(r))
	}
	writeJSON(w, http.StatusOK, guessRes{
		Round:   res.View.Token,
		State:   res.View.State,
		Correct: res.Correct,
		Message: res.View.Message,
	})
}

type hintRes struct {
	Round uint64 `json:"round"`
	Hint  string `json:"hint"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	token, word, err := sess.HintTarget()
	switch {
	case errors.Is(err, game.ErrNoRound):
		writeError(w, http.StatusConflict, "no_round")
		return
	case errors.Is(err, game.ErrLoading):
		writeError(w, http.StatusConflict, "round_loading")
		return
	}
	h := s.hints.Hint(r.Context(), word)
	v, ok := sess.SetHint(token, h)
	if !ok {
		writeError(w, http.StatusConflict, "stale_round")
		return
	}
	writeJSON(w, http.StatusOK, hintRes{Round: v.Token, Hint: v.Hint})
}
