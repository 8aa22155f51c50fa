package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

type AdminHandler struct {
	Queries  *usecase.LeadQueries
	ExportUC *usecase.ExportLeadUseCase
	Logger   *logger.Logger
}

func NewAdminHandler(queries *usecase.LeadQueries, exportUC *usecase.ExportLeadUseCase, log *logger.Logger) *AdminHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminHandler{Queries: queries, ExportUC: exportUC, Logger: log}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Queries.Stats(r.Context())
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ExportToSheets(w http.ResponseWriter, r *http.Request) {
	var input usecase.ExportLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.ExportUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "export failed")
		return
	}
	writeJSON(w, http.StatusOK, output)
}
