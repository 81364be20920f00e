package server

import (
	"errors"
	"net/http"

	"github.com/at-ishikawa/wordquiz/internal/speech"
)

// synthesizeSpeech returns mp3 audio for the given text and language.
func (h *Handler) synthesizeSpeech(w http.ResponseWriter, r *http.Request) {
	if h.synthesizer == nil {
		respondError(w, http.StatusServiceUnavailable, "speech synthesis is not enabled")
		return
	}

	query := r.URL.Query()
	audio, err := h.synthesizer.Synthesize(r.Context(), query.Get("text"), query.Get("lang"))
	if errors.Is(err, speech.ErrMissingParameters) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("synthesize speech", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to synthesize speech")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}
