package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/at-ishikawa/wordquiz/internal/user"
)

const leaderboardLimit = 20

type loginRequest struct {
	Username string `json:"username"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

// login fetches the account for the given username, creating it on first
// login. The admin role is granted only to the reserved admin username.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		respondError(w, http.StatusBadRequest, "username is required")
		return
	}

	ctx := r.Context()
	u, err := h.users.FindByUsername(ctx, username)
	if err != nil {
		h.logger.Error("find user", "error", err, "username", username)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	message := "Login successful"
	if u == nil {
		u, err = h.users.Create(ctx, username, user.RoleFor(username))
		if err != nil {
			h.logger.Error("create user", "error", err, "username", username)
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}
		message = "User created and logged in"
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Message: message,
		User: userResponse{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
			IsAdmin:  u.IsAdmin(),
		},
	})
}

type historyEntry struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	Score    int       `json:"score"`
	TestDate time.Time `json:"test_date"`
}

// history returns a user's submissions, newest first.
func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil || userID <= 0 {
		respondError(w, http.StatusBadRequest, "user id is required")
		return
	}

	tests, err := h.records.FindTestsByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("load test history", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]historyEntry, 0, len(tests))
	for _, t := range tests {
		entries = append(entries, historyEntry{
			ID:       t.ID,
			UserID:   t.UserID,
			Score:    t.Score,
			TestDate: t.TestDate,
		})
	}
	respondJSON(w, http.StatusOK, entries)
}

type leaderboardEntry struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	TotalTests int    `json:"totalTests"`
	AvgScore   int    `json:"avgScore"`
	BestScore  int    `json:"bestScore"`
	TotalScore int    `json:"totalScore"`
}

// leaderboard returns per-user aggregates for everyone with at least one test.
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.records.Leaderboard(r.Context(), leaderboardLimit)
	if err != nil {
		h.logger.Error("load leaderboard", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]leaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, leaderboardEntry{
			Rank:       row.Rank,
			Username:   row.Username,
			TotalTests: row.TotalTests,
			AvgScore:   int(math.Round(row.AvgScore)),
			BestScore:  row.BestScore,
			TotalScore: row.TotalScore,
		})
	}
	respondJSON(w, http.StatusOK, entries)
}
