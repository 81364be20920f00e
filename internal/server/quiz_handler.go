package server

import (
	"encoding/json"
	"net/http"

	"github.com/at-ishikawa/wordquiz/internal/assessment"
)

type startTestRequest struct {
	From  int64  `json:"from"`
	To    int64  `json:"to"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// startTest selects words from the requested id range and returns the
// generated questions in quiz order.
func (h *Handler) startTest(w http.ResponseWriter, r *http.Request) {
	var req startTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	mode, err := assessment.ParseMode(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	questions, err := h.quizzes.StartQuiz(r.Context(), req.From, req.To, mode, req.Count)
	if err != nil {
		h.respondQuizError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

type startMistakeTestRequest struct {
	Type string `json:"type"`
}

// startMistakeTest builds a quiz over every word with a recorded mistake.
func (h *Handler) startMistakeTest(w http.ResponseWriter, r *http.Request) {
	var req startMistakeTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	mode, err := assessment.ParseMode(req.Type)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	questions, err := h.quizzes.StartReviewQuiz(r.Context(), mode)
	if err != nil {
		h.respondQuizError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, questions)
}

type submittedQuestion struct {
	WordID    int64 `json:"word_id"`
	IsCorrect bool  `json:"isCorrect"`
}

type submitTestRequest struct {
	UserID    int64               `json:"userId"`
	Questions []submittedQuestion `json:"questions"`
}

type submitTestResponse struct {
	Message string `json:"message"`
	TestID  int64  `json:"testId"`
	Score   int    `json:"score"`
}

// submitTest records a completed answer sheet. The score is computed here
// from the per-question results rather than trusted from the client.
func (h *Handler) submitTest(w http.ResponseWriter, r *http.Request) {
	var req submitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	answers := make([]assessment.Answer, 0, len(req.Questions))
	for _, q := range req.Questions {
		answers = append(answers, assessment.Answer{
			WordID:    q.WordID,
			IsCorrect: q.IsCorrect,
		})
	}

	result, err := h.quizzes.SubmitQuiz(r.Context(), req.UserID, answers)
	if err != nil {
		h.respondQuizError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, submitTestResponse{
		Message: "Test results saved successfully.",
		TestID:  result.TestID,
		Score:   result.Score,
	})
}
