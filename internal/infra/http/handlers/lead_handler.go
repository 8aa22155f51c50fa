package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	Queries      *usecase.LeadQueries
	Logger       *logger.Logger
}

func NewLeadHandler(uc *usecase.CreateLeadUseCase, queries *usecase.LeadQueries, log *logger.Logger) *LeadHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &LeadHandler{CreateLeadUC: uc, Queries: queries, Logger: log}
}

// Create handles POST /api/leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.AffiliateID = AffiliateID(r)

	output, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create lead")
		return
	}
	writeJSON(w, http.StatusOK, output)
}

// List handles GET /api/leads. Each lead carries its calculations and
// consultations.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Queries.ListWithDetails(r.Context())
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch leads")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	lead, err := h.Queries.Get(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// UpdateStatus handles PATCH /api/leads/{id} with a {"status"} body.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.UpdateStatusInput
	if !decodeJSON(w, r, &input) {
		return
	}
	lead, err := h.Queries.UpdateLeadStatus(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
