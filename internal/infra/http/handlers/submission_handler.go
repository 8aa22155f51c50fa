package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

// SubmissionHandler serves the calculator and consultation forms.
type SubmissionHandler struct {
	CalculationUC  *usecase.CreateCalculationUseCase
	ConsultationUC *usecase.CreateConsultationUseCase
	Queries        *usecase.LeadQueries
	Logger         *logger.Logger
}

func NewSubmissionHandler(
	calculationUC *usecase.CreateCalculationUseCase,
	consultationUC *usecase.CreateConsultationUseCase,
	queries *usecase.LeadQueries,
	log *logger.Logger,
) *SubmissionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &SubmissionHandler{
		CalculationUC:  calculationUC,
		ConsultationUC: consultationUC,
		Queries:        queries,
		Logger:         log,
	}
}

func (h *SubmissionHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCalculationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.CalculationUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create calculation")
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *SubmissionHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateConsultationInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.ConsultationUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to schedule consultation")
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *SubmissionHandler) UpdateConsultationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.UpdateStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}
	c, err := h.Queries.UpdateConsultationStatus(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update consultation")
		return
	}
	writeJSON(w, http.StatusOK, c)
}
