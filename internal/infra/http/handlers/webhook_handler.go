package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

type WebhookResponse struct {
	Received bool `json:"received"`
}

// WebhookHandler receives OpenSolar events. Any JSON body is accepted;
// unknown fields and event types are ignored.
type WebhookHandler struct {
	EventUC *usecase.HandleOpenSolarEventUseCase
	Logger  *logger.Logger
}

func NewWebhookHandler(uc *usecase.HandleOpenSolarEventUseCase, log *logger.Logger) *WebhookHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &WebhookHandler{EventUC: uc, Logger: log}
}

func (h *WebhookHandler) OpenSolar(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if !decodeOptionalJSON(w, r, &body) {
		return
	}

	// Arrays, scalars and mistyped fields are received and ignored.
	var event usecase.OpenSolarEvent
	if len(body) > 0 {
		_ = json.Unmarshal(body, &event)
	}
	h.EventUC.Execute(r.Context(), event)
	writeJSON(w, http.StatusOK, WebhookResponse{Received: true})
}
