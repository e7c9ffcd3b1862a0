package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/feastly/feastly/internal/gateway"
	"github.com/feastly/feastly/internal/models"
	"go.uber.org/zap"
)

// SignatureVerifier checks the gateway signature over the raw request body
type SignatureVerifier interface {
	VerifySignature(body []byte, signature string) error
}

// WebhookService reconciles verified gateway events
type WebhookService interface {
	HandleWebhook(ctx context.Context, event *models.GatewayEvent) error
}

// WebhookHandler receives unauthenticated gateway webhooks
type WebhookHandler struct {
	svc      WebhookService
	verifier SignatureVerifier
	logger   *zap.Logger
}

// NewWebhookHandler creates new WebhookHandler instance
func NewWebhookHandler(svc WebhookService, verifier SignatureVerifier, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		svc:      svc,
		verifier: verifier,
		logger:   logger,
	}
}

// HandleGatewayWebhook verifies and applies a gateway event. The signature
// is checked against the raw body before any parsing. Replayed and unknown
// events are acknowledged with 200; only transient failures return a non-2xx
// status, which invites gateway redelivery.
// 200 — event applied or already processed;
// 400 — bad signature or malformed event;
// 500 — transient failure, redelivery welcome.
func (wh *WebhookHandler) HandleGatewayWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil || len(body) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		signature := r.Header.Get(gateway.SignatureHeader)
		if err := wh.verifier.VerifySignature(body, signature); err != nil {
			wh.logger.Warn("webhook signature rejected")
			http.Error(w, "bad signature", http.StatusBadRequest)
			return
		}

		event, err := gateway.ParseEvent(body)
		if err != nil {
			http.Error(w, "bad event", http.StatusBadRequest)
			return
		}

		if err := wh.svc.HandleWebhook(r.Context(), event); err != nil {
			if errors.Is(err, models.ErrConflictData) {
				// lost a race with a concurrent delivery of the same object;
				// the winner applied the effects
				w.WriteHeader(http.StatusOK)
				return
			}
			wh.logger.Error("webhook processing failed",
				zap.String("event_id", event.ID), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
