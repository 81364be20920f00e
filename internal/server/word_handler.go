package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// maxUploadSize caps word list uploads at 8 MiB, far above any real list.
const maxUploadSize = 8 << 20

const mistakesLimit = 100

type uploadResponse struct {
	Message  string `json:"message"`
	Parsed   int    `json:"parsed"`
	Inserted int    `json:"inserted"`
}

// uploadWords imports a word list file. Admin only; the requesting user id
// travels in the multipart form alongside the file.
func (h *Handler) uploadWords(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	userID, _ := strconv.ParseInt(r.FormValue("userId"), 10, 64)
	if !h.authorizeAdmin(r.Context(), w, userID) {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	result, err := h.importer.Import(r.Context(), file)
	if err != nil {
		h.logger.Error("import word list", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, uploadResponse{
		Message:  fmt.Sprintf("%d words uploaded successfully.", result.Inserted),
		Parsed:   result.Parsed,
		Inserted: result.Inserted,
	})
}

type clearWordsRequest struct {
	UserID int64 `json:"userId"`
}

// clearWords deletes the whole catalog. Admin only.
func (h *Handler) clearWords(w http.ResponseWriter, r *http.Request) {
	var req clearWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if !h.authorizeAdmin(r.Context(), w, req.UserID) {
		return
	}

	if err := h.words.DeleteAll(r.Context()); err != nil {
		h.logger.Error("clear word catalog", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Word library cleared successfully."})
}

type testOptionsResponse struct {
	WordCount int `json:"wordCount"`
}

// testOptions reports the catalog size so a client can bound its id range.
func (h *Handler) testOptions(w http.ResponseWriter, r *http.Request) {
	count, err := h.words.Count(r.Context())
	if err != nil {
		h.logger.Error("count words", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, testOptionsResponse{WordCount: count})
}

type mistakeEntry struct {
	ID           int64   `json:"id"`
	Word         string  `json:"word"`
	Translation  string  `json:"translation"`
	MistakeCount int     `json:"mistake_count"`
	TestCount    int     `json:"test_count"`
	ErrorRate    float64 `json:"error_rate"`
}

// mistakes returns the worst-known words for the statistics view.
func (h *Handler) mistakes(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.FindTopMistaken(r.Context(), mistakesLimit)
	if err != nil {
		h.logger.Error("load mistake statistics", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]mistakeEntry, 0, len(words))
	for _, wd := range words {
		entries = append(entries, mistakeEntry{
			ID:           wd.ID,
			Word:         wd.Word,
			Translation:  wd.Translation.String,
			MistakeCount: wd.MistakeCount,
			TestCount:    wd.TestCount,
			ErrorRate:    wd.ErrorRate(),
		})
	}
	respondJSON(w, http.StatusOK, entries)
}
