package handlers

import (
	"net/http"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
	"github.com/liv8solar/solar-leads/internal/usecase"
)

// CRMHandler serves the portal records used by admins, reps and clients.
type CRMHandler struct {
	CRM               *usecase.CRM
	CompleteProjectUC *usecase.CompleteProjectUseCase
	Logger            *logger.Logger
}

func NewCRMHandler(crm *usecase.CRM, completeUC *usecase.CompleteProjectUseCase, log *logger.Logger) *CRMHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CRMHandler{CRM: crm, CompleteProjectUC: completeUC, Logger: log}
}

func (h *CRMHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.CRM.ListUsers(r.Context())
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(users))
}

func (h *CRMHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateUserInput
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.CRM.CreateUser(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *CRMHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.UpdateUserInput
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.CRM.UpdateUser(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *CRMHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	project, err := h.CRM.CreateProject(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *CRMHandler) ProjectsByClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}
	projects, err := h.CRM.ProjectsByClient(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch client projects")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(projects))
}

func (h *CRMHandler) ProjectsByRep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "repId")
	if !ok {
		return
	}
	projects, err := h.CRM.ProjectsByRep(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch rep projects")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(projects))
}

func (h *CRMHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.UpdateProjectInput
	if !decodeJSON(w, r, &input) {
		return
	}
	project, err := h.CRM.UpdateProject(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// CompleteProject handles POST /api/projects/{id}/complete. The body with
// totalValue is optional.
func (h *CRMHandler) CompleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var input usecase.CompleteProjectInput
	if !decodeOptionalJSON(w, r, &input) {
		return
	}
	input.ProjectID = id

	output, err := h.CompleteProjectUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to complete project")
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *CRMHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTaskInput
	if !decodeJSON(w, r, &input) {
		return
	}
	task, err := h.CRM.CreateTask(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *CRMHandler) TasksByRep(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "repId")
	if !ok {
		return
	}
	tasks, err := h.CRM.TasksByRep(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch tasks")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tasks))
}

func (h *CRMHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var patch entity.TaskPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	task, err := h.CRM.UpdateTask(r.Context(), id, patch)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *CRMHandler) CreateInstallationUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateInstallationUpdateInput
	if !decodeJSON(w, r, &input) {
		return
	}
	update, err := h.CRM.CreateInstallationUpdate(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to create installation update")
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func (h *CRMHandler) InstallationUpdatesByProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	updates, err := h.CRM.InstallationUpdatesByProject(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch installation updates")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(updates))
}

func (h *CRMHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateMessageInput
	if !decodeJSON(w, r, &input) {
		return
	}
	msg, err := h.CRM.CreateMessage(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to send message")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *CRMHandler) MessagesByProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}
	msgs, err := h.CRM.MessagesByProject(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, r, h.Logger, err, "failed to fetch messages")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(msgs))
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
