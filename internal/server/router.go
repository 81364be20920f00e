package server

import "net/http"

// NewRouter builds the API route table and wraps it with the CORS policy
// for the given origins.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", h.login)
	mux.HandleFunc("GET /api/leaderboard", h.leaderboard)
	mux.HandleFunc("GET /api/history", h.history)

	mux.HandleFunc("GET /api/test-options", h.testOptions)
	mux.HandleFunc("POST /api/start-test", h.startTest)
	mux.HandleFunc("POST /api/start-mistake-test", h.startMistakeTest)
	mux.HandleFunc("POST /api/submit-test", h.submitTest)
	mux.HandleFunc("GET /api/mistakes", h.mistakes)

	mux.HandleFunc("POST /api/upload", h.uploadWords)
	mux.HandleFunc("POST /api/words/clear", h.clearWords)

	mux.HandleFunc("GET /api/synthesize-speech", h.synthesizeSpeech)

	return withCORS(allowedOrigins, mux)
}
