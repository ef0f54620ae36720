package httpserver

import (
	"log"
	"net/http"
)

// StartHTTP serves the liveness endpoint on the default mux, which is also
// where tgbotapi.ListenForWebhook registers its handler in webhook mode.
func StartHTTP(addr string) error {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("billbot telegram bot"))
	})
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
