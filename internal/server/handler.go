// Package server exposes the quiz application as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/wordquiz/internal/assessment"
	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/user"
	"github.com/at-ishikawa/wordquiz/internal/word"
	"github.com/at-ishikawa/wordquiz/internal/wordlist"
)

// SpeechSynthesizer produces pronunciation audio for a piece of text.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	users       user.UserRepository
	words       word.WordRepository
	records     record.RecordRepository
	quizzes     *assessment.Service
	importer    *wordlist.Importer
	synthesizer SpeechSynthesizer
	logger      *slog.Logger
}

// NewHandler creates a Handler. synthesizer may be nil, in which case the
// speech endpoint reports itself unavailable.
func NewHandler(
	users user.UserRepository,
	words word.WordRepository,
	records record.RecordRepository,
	quizzes *assessment.Service,
	importer *wordlist.Importer,
	synthesizer SpeechSynthesizer,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:       users,
		words:       words,
		records:     records,
		quizzes:     quizzes,
		importer:    importer,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondQuizError maps quiz engine failures onto HTTP statuses. Anything
// that is not a client mistake is logged and hidden behind a generic 500.
func (h *Handler) respondQuizError(w http.ResponseWriter, err error) {
	var insufficient *assessment.InsufficientWordsError
	switch {
	case errors.As(err, &insufficient),
		errors.Is(err, assessment.ErrInvalidParameters),
		errors.Is(err, assessment.ErrNoMistakes),
		errors.Is(err, assessment.ErrMissingUser):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("quiz operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// authorizeAdmin checks the requesting user's role and writes the failure
// response itself. The caller proceeds only when it returns true.
func (h *Handler) authorizeAdmin(ctx context.Context, w http.ResponseWriter, userID int64) bool {
	if userID <= 0 {
		respondError(w, http.StatusUnauthorized, "user id is required")
		return false
	}

	u, err := h.users.FindByID(ctx, userID)
	if err != nil {
		h.logger.Error("load user for authorization", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return false
	}
	if u == nil || !u.IsAdmin() {
		respondError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
