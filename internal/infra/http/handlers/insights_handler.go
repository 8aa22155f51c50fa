package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

type StatusResponse struct {
	Configured bool `json:"configured"`
}

type InsightsHandler struct {
	UC     *usecase.SolarInsightsUseCase
	Logger *logger.Logger
}

func NewInsightsHandler(uc *usecase.SolarInsightsUseCase, log *logger.Logger) *InsightsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InsightsHandler{UC: uc, Logger: log}
}

func (h *InsightsHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Configured: h.UC.Configured()})
}

func (h *InsightsHandler) ForAddress(w http.ResponseWriter, r *http.Request) {
	var input usecase.SolarInsightsInput
	if !decodeJSON(w, r, &input) {
		return
	}
	summary, err := h.UC.ForAddress(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to get solar insights")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *InsightsHandler) BillMatch(w http.ResponseWriter, r *http.Request) {
	var input usecase.BillMatchInput
	if !decodeJSON(w, r, &input) {
		return
	}
	summary, err := h.UC.ForBill(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to get solar insights")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
