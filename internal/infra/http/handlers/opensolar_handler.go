package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

// OpenSolarHandler proxies the design platform. Every route except Status
// answers 503 while the platform has no credentials.
type OpenSolarHandler struct {
	Projects   *usecase.OpenSolarProjects
	ProspectUC *usecase.CreateProspectUseCase
	Logger     *logger.Logger
}

func NewOpenSolarHandler(projects *usecase.OpenSolarProjects, prospectUC *usecase.CreateProspectUseCase, log *logger.Logger) *OpenSolarHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &OpenSolarHandler{Projects: projects, ProspectUC: prospectUC, Logger: log}
}

func (h *OpenSolarHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Configured: h.Projects.Configured()})
}

func (h *OpenSolarHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []opensolar.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *OpenSolarHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	project, err := h.Projects.Get(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *OpenSolarHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	var updates opensolar.ProjectCreate
	if !decodeJSON(w, r, &updates) {
		return
	}
	project, err := h.Projects.Update(r.Context(), id, updates)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *OpenSolarHandler) ProjectSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	summary, err := h.Projects.Summary(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch project summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *OpenSolarHandler) ProjectSystems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	systems, err := h.Projects.Systems(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch systems")
		return
	}
	if systems == nil {
		systems = []opensolar.SystemDetails{}
	}
	writeJSON(w, http.StatusOK, systems)
}

// CreateProspect pushes an existing lead to the platform by id.
func (h *OpenSolarHandler) CreateProspect(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateProspectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	output, err := h.ProspectUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create prospect")
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *OpenSolarHandler) CreateWebhook(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateWebhookInput
	if !decodeJSON(w, r, &input) {
		return
	}
	webhook, err := h.Projects.CreateWebhook(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create webhook")
		return
	}
	writeJSON(w, http.StatusOK, webhook)
}
