package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/mfell/agentx/internal/cards"
	"github.com/mfell/agentx/internal/models"
	sessionRepo "github.com/mfell/agentx/internal/repositories/session"
	gameSvc "github.com/mfell/agentx/internal/services/game"
	syncSvc "github.com/mfell/agentx/internal/services/session"
)

// Server exposes the game engine and the save/load/list/delete server
// functions to the presentation layer
type Server struct {
	game   gameSvc.Service
	sync   syncSvc.Service
	repo   sessionRepo.Repository
	logger *zap.Logger
}

// Config holds the dependencies for the HTTP server
type Config struct {
	GameService gameSvc.Service
	SyncService syncSvc.Service
	Repo        sessionRepo.Repository
	Logger      *zap.Logger
}

// NewServer creates a new HTTP handler set
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.SyncService == nil {
		return nil, errors.New("sync service cannot be nil")
	}
	if cfg.Repo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		game:   cfg.GameService,
		sync:   cfg.SyncService,
		repo:   cfg.Repo,
		logger: logger,
	}, nil
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// LoadOrCreateSession resumes the session named in the request body, or
// mints a fresh one when the body names none or no usable record exists
func (s *Server) LoadOrCreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	if body.SessionID == "" {
		out, err := s.sync.StartFresh(r.Context(), &syncSvc.StartFreshInput{
			LastPairIndex: -1,
		})
		if err != nil {
			s.internalError(w, "create session", err)
			return
		}
		s.writeResumeResult(w, out.Session, false)
		return
	}

	out, err := s.sync.LoadOrCreate(r.Context(), &syncSvc.LoadOrCreateInput{
		SessionID: body.SessionID,
	})
	if err != nil {
		s.internalError(w, "load or create session", err)
		return
	}

	s.writeResumeResult(w, out.Session, out.Resumed)
}

// ResumeSession follows the store's active-session pointer, the page-reload
// path where the device remembers nothing but the store does
func (s *Server) ResumeSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.sync.LoadOrCreate(r.Context(), &syncSvc.LoadOrCreateInput{})
	if err != nil {
		s.internalError(w, "resume session", err)
		return
	}

	s.writeResumeResult(w, out.Session, out.Resumed)
}

func (s *Server) writeResumeResult(w http.ResponseWriter, sess *models.Session, resumed bool) {
	s.writeJSON(w, http.StatusOK, struct {
		Session *models.Session `json:"session"`
		Resumed bool            `json:"resumed"`
	}{Session: sess, Resumed: resumed})
}

// GetSession is the load_game server function
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// SaveSession is the save_game server function: a device uploads its full
// session document, last writer wins
func (s *Server) SaveSession(w http.ResponseWriter, r *http.Request) {
	var sess models.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		http.Error(w, "invalid session document", http.StatusBadRequest)
		return
	}

	if sess.SessionID != chi.URLParam(r, "sessionID") {
		http.Error(w, "session ID does not match document", http.StatusBadRequest)
		return
	}

	if err := sess.Validate(); err != nil {
		http.Error(w, "session document failed validation: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.repo.SaveSession(r.Context(), &sessionRepo.SaveSessionInput{
		Session: &sess,
	}); err != nil {
		s.internalError(w, "save session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSessions is the list_saved_games server function
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	out, err := s.repo.ListSessions(r.Context(), &sessionRepo.ListSessionsInput{})
	if err != nil {
		s.internalError(w, "list sessions", err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		SessionIDs []string `json:"session_ids"`
	}{SessionIDs: out.SessionIDs})
}

// DeleteSession is the delete_saved_game server function
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	err := s.repo.DeleteSession(r.Context(), &sessionRepo.DeleteSessionInput{
		SessionID: chi.URLParam(r, "sessionID"),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		s.internalError(w, "delete session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SessionQR renders a PNG QR code of the session's resume URL so a second
// device can pick the game up by scanning it
func (s *Server) SessionQR(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		s.internalError(w, "encode qr", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *Server) StartGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var body struct {
		PlayerNames []string `json:"player_names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	out, err := s.game.StartGame(r.Context(), &gameSvc.StartGameInput{
		Session:     sess,
		PlayerNames: body.PlayerNames,
	})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeSessionResult(w, out.Session, out.PersistWarning)
}

func (s *Server) MarkCardViewed(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "playerIndex"))
	if err != nil {
		http.Error(w, "invalid player index", http.StatusBadRequest)
		return
	}

	out, err := s.game.MarkCardViewed(r.Context(), &gameSvc.MarkCardViewedInput{
		Session:     sess,
		PlayerIndex: index,
	})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeSessionResult(w, out.Session, out.PersistWarning)
}

func (s *Server) OpenVoting(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	out, err := s.game.OpenVoting(r.Context(), &gameSvc.OpenVotingInput{Session: sess})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeSessionResult(w, out.Session, out.PersistWarning)
}

func (s *Server) SubmitVote(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var body struct {
		VoterIndex  int `json:"voter_index"`
		TargetIndex int `json:"target_index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	out, err := s.game.SubmitVote(r.Context(), &gameSvc.SubmitVoteInput{
		Session:     sess,
		VoterIndex:  body.VoterIndex,
		TargetIndex: body.TargetIndex,
	})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Session        *models.Session `json:"session"`
		VotesCast      int             `json:"votes_cast"`
		AllVoted       bool            `json:"all_voted"`
		PersistWarning string          `json:"persist_warning,omitempty"`
	}{out.Session, out.VotesCast, out.AllVoted, out.PersistWarning})
}

func (s *Server) TallyVotes(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Force bool `json:"force"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	out, err := s.game.TallyVotes(r.Context(), &gameSvc.TallyVotesInput{
		Session: sess,
		Force:   body.Force,
	})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Session         *models.Session `json:"session"`
		EliminatedIndex int             `json:"eliminated_index"`
		Tie             bool            `json:"tie"`
		ImposterCaught  bool            `json:"imposter_caught"`
		MatchDecided    bool            `json:"match_decided"`
		VoteCounts      map[int]int     `json:"vote_counts"`
		PersistWarning  string          `json:"persist_warning,omitempty"`
	}{out.Session, out.EliminatedIndex, out.Tie, out.ImposterCaught, out.MatchDecided, out.VoteCounts, out.PersistWarning})
}

func (s *Server) NextRound(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	out, err := s.game.NextRound(r.Context(), &gameSvc.NextRoundInput{Session: sess})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeSessionResult(w, out.Session, out.PersistWarning)
}

func (s *Server) EndGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	out, err := s.game.EndGame(r.Context(), &gameSvc.EndGameInput{Session: sess})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		Session        *models.Session `json:"session"`
		ImposterCaught bool            `json:"imposter_caught"`
		PersistWarning string          `json:"persist_warning,omitempty"`
	}{out.Session, out.ImposterCaught, out.PersistWarning})
}

func (s *Server) Rematch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	out, err := s.game.Rematch(r.Context(), &gameSvc.RematchInput{Session: sess})
	if err != nil {
		s.gameError(w, err)
		return
	}

	s.writeSessionResult(w, out.Session, out.PersistWarning)
}

func (s *Server) NewGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	out, err := s.game.NewGame(r.Context(), &gameSvc.NewGameInput{Session: sess})
	if err != nil {
		s.internalError(w, "new game", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, out.Session)
}

// loadSession fetches the session addressed by the URL, writing the error
// response itself when the record cannot be served
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.repo.GetSession(r.Context(), &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return nil, false
		}
		s.internalError(w, "load session", err)
		return nil, false
	}

	return sess, true
}

func (s *Server) writeSessionResult(w http.ResponseWriter, sess *models.Session, warning string) {
	s.writeJSON(w, http.StatusOK, struct {
		Session        *models.Session `json:"session"`
		PersistWarning string          `json:"persist_warning,omitempty"`
	}{Session: sess, PersistWarning: warning})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// gameError maps engine errors onto HTTP statuses: rejected transitions and
// bad input are client errors that leave the session untouched
func (s *Server) gameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameSvc.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gameSvc.ErrInvalidVote),
		errors.Is(err, gameSvc.ErrInvalidPlayerName),
		errors.Is(err, gameSvc.ErrInvalidPlayerIndex),
		errors.Is(err, cards.ErrInsufficientPlayers),
		errors.Is(err, cards.ErrEmptyCatalog):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.internalError(w, "game operation", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("request failed", zap.String("op", op), zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
