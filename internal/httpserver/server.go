// internal/httpserver/server.go
//
// HTTP server wiring for the word-scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/" (embedded game page), "/health".
//   - Round endpoints (optional auth): mounted under /api/round.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /rounds/mine.
//   - Player session cookie and best-effort round persistence.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Optional auth decorates requests with the user when a valid token is present;
//     guests play with just the session cookie.

package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/account"
	"github.com/robalobadob/wordscramble/internal/db"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/hint"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

const sessionCookieName = "scramble_session"

// Deps are the collaborators a Server needs. DB and Accounts may be nil,
// which disables persistence and the account routes.
type Deps struct {
	Store    store.Store
	Words    words.Source
	Hints    hint.Source
	DB       *sql.DB
	Accounts *account.Service
}

// Options tune HTTP behaviour.
type Options struct {
	ClientOrigin   string
	CookieName     string // auth cookie
	Production     bool
	DailySalt      string
	DailyWords     []string
	HandlerTimeout time.Duration
}

// Server bundles router and dependencies.
type Server struct {
	r        *chi.Mux
	store    store.Store
	words    words.Source
	hints    hint.Source
	db       *sql.DB
	accounts *account.Service
	opts     Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.CookieName == "" {
		opts.CookieName = "scramble_token"
	}
	if opts.HandlerTimeout <= 0 {
		opts.HandlerTimeout = 20 * time.Second // two upstream calls fit
	}
	s := &Server{
		r:        chi.NewRouter(),
		store:    d.Store,
		words:    d.Words,
		hints:    d.Hints,
		db:       d.DB,
		accounts: d.Accounts,
		opts:     opts,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.HandlerTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- public ---
	s.r.Get("/", s.handleIndex)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Rounds: OPTIONAL AUTH (guests can play)
	s.r.With(s.withOptionalAuth()).Route("/api/round", s.mountRounds)

	if s.accounts != nil {
		s.mountAuthRoutes()
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler { return s.r }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one access-log line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------ pages --------------------------------------

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.IndexHTML()
	if err != nil {
		log.Error().Err(err).Msg("load index page")
		writeError(w, http.StatusInternalServerError, "page_unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// ----------------------------- sessions ------------------------------------

// session returns the caller's game session, issuing a cookie on first visit.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*game.Session, error) {
	id := sessionID(r)
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   s.opts.Production,
			SameSite: s.sameSite(),
			Expires:  time.Now().Add(180 * 24 * time.Hour),
		})
	}
	return s.store.GetOrCreate(r.Context(), id)
}

// sessionID reads a well-formed session cookie, or "".
func sessionID(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) sameSite() http.SameSite {
	if s.opts.Production {
		return http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	return http.SameSiteLaxMode
}

// --------------------------- persistence -----------------------------------

// recordStart inserts a history row for a new round (best effort).
func (s *Server) recordStart(ctx context.Context, sessionID string, rd game.Round, userID string) {
	if s.db == nil {
		return
	}
	if err := db.InsertRound(ctx, s.db, rd.ID, sessionID, userID); err != nil {
		log.Warn().Err(err).Str("round", rd.ID).Msg("insert round")
	}
}

// recordFinish stores a round's outcome and bumps the user's stats once
// (best effort). It may run before recordStart for the same round when a
// guess races the request that started it.
func (s *Server) recordFinish(ctx context.Context, sessionID string, rd game.Round, userID string) {
	if s.db == nil || rd.ID == "" {
		return
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin finish round")
		return
	}
	defer func() { _ = tx.Rollback() }()

	finished, err := db.FinishRound(ctx, tx, db.RoundRow{
		ID:        rd.ID,
		SessionID: sessionID,
		UserID:    userID,
		Word:      rd.Word,
		Attempts:  rd.Attempts,
		Solved:    rd.Solved,
		Hinted:    rd.Hinted,
	})
	if err != nil {
		log.Warn().Err(err).Str("round", rd.ID).Msg("finish round")
		return
	}
	if finished && userID != "" {
		if err := account.RecordRound(ctx, tx, userID, rd.Solved); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("record round stats")
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit finish round")
	}
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
