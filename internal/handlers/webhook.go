// Package handlers is the HTTP front door: the platform verification
// handshake and the webhook receiver that feeds the event worker.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"robomua/aiysha-bot/internal/metrics"
	"robomua/aiysha-bot/internal/whatsapp"
)

func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AIySha from roboMUA!"))
	}
}

func WelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello there! My name is AIySha - your personal digital beauty advisor from roboMUA!"))
	}
}

// VerifyHandler answers the platform's GET handshake: echo the challenge when
// the verify token matches, 403 otherwise.
func VerifyHandler(verifyToken string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if token == verifyToken && challenge != "" {
			w.Write([]byte(challenge))
			return
		}
		log.Warn("webhook verification rejected")
		http.Error(w, "incorrect token.", http.StatusForbidden)
	}
}

// WebhookHandler enqueues each POST for the worker and acknowledges with 200
// no matter what: the platform redelivers on anything else, and a malformed
// body is our problem, not theirs.
func WebhookHandler(worker *Worker, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload whatsapp.WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.Error("error decoding webhook body", zap.Error(err))
			w.Write([]byte("Request received!"))
			return
		}
		metrics.EventsReceived.Inc()
		if !worker.Enqueue(payload) {
			log.Warn("worker queue full, dropping event for redelivery")
		}
		w.Write([]byte("Request received!"))
	}
}
