package usecase

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

// CRM covers the dashboard records: users, projects, tasks, messages and
// installation updates. Updates are partial and return a not-found
// DomainError for unknown ids.
type CRM struct {
	Users               entity.UserRepositoryInterface
	Projects            entity.ProjectRepositoryInterface
	Tasks               entity.TaskRepositoryInterface
	Messages            entity.MessageRepositoryInterface
	InstallationUpdates entity.InstallationUpdateRepositoryInterface
}

func NewCRM(
	users entity.UserRepositoryInterface,
	projects entity.ProjectRepositoryInterface,
	tasks entity.TaskRepositoryInterface,
	messages entity.MessageRepositoryInterface,
	updates entity.InstallationUpdateRepositoryInterface,
) *CRM {
	return &CRM{
		Users:               users,
		Projects:            projects,
		Tasks:               tasks,
		Messages:            messages,
		InstallationUpdates: updates,
	}
}

type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin rep client"`
	IsActive  *bool  `json:"isActive"`
}

type UpdateUserInput struct {
	entity.UserPatch
	Role *string `json:"role" validate:"omitempty,oneof=admin rep client"`
}

type CreateProjectInput struct {
	LeadID                 *int64     `json:"leadId"`
	ClientID               *int64     `json:"clientId"`
	RepID                  *int64     `json:"repId"`
	ProjectName            string     `json:"projectName" validate:"required"`
	EstimatedValue         *string    `json:"estimatedValue" validate:"omitempty,amount"`
	InstallationStatus     string     `json:"installationStatus"`
	InstallationProgress   int        `json:"installationProgress" validate:"gte=0,lte=100"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	OpenSolarProjectID     *string    `json:"openSolarProjectId"`
}

type UpdateProjectInput struct {
	entity.ProjectPatch
	InstallationProgress *int `json:"installationProgress" validate:"omitempty,gte=0,lte=100"`
}

type CreateTaskInput struct {
	RepID       *int64     `json:"repId"`
	LeadID      *int64     `json:"leadId"`
	ProjectID   *int64     `json:"projectId"`
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

type CreateMessageInput struct {
	ProjectID   *int64  `json:"projectId"`
	SenderID    *int64  `json:"senderId"`
	RecipientID *int64  `json:"recipientId"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message" validate:"required"`
	IsBot       bool    `json:"isBot"`
}

type CreateInstallationUpdateInput struct {
	ProjectID int64   `json:"projectId" validate:"required,gt=0"`
	Status    string  `json:"status" validate:"required"`
	Progress  int     `json:"progress" validate:"gte=0,lte=100"`
	Note      *string `json:"note"`
}

func (c *CRM) CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		IsActive:  true,
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	if err := c.Users.Create(ctx, u); err != nil {
		return nil, persistenceError("create user", err)
	}
	return u, nil
}

func (c *CRM) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := c.Users.List(ctx)
	if err != nil {
		return nil, persistenceError("fetch users", err)
	}
	return users, nil
}

func (c *CRM) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	patch := input.UserPatch
	patch.Role = input.Role
	u, err := c.Users.Update(ctx, id, patch)
	if err != nil {
		return nil, persistenceError("update user", err)
	}
	if u == nil {
		return nil, notFound("user")
	}
	return u, nil
}

func (c *CRM) CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	p := &entity.Project{
		LeadID:                 input.LeadID,
		ClientID:               input.ClientID,
		RepID:                  input.RepID,
		ProjectName:            input.ProjectName,
		EstimatedValue:         input.EstimatedValue,
		InstallationStatus:     input.InstallationStatus,
		InstallationProgress:   input.InstallationProgress,
		ExpectedCompletionDate: input.ExpectedCompletionDate,
		OpenSolarProjectID:     input.OpenSolarProjectID,
	}
	p.ApplyDefaults()
	if err := c.Projects.Create(ctx, p); err != nil {
		return nil, persistenceError("create project", err)
	}
	return p, nil
}

func (c *CRM) ProjectsByClient(ctx context.Context, clientID int64) ([]*entity.Project, error) {
	projects, err := c.Projects.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, persistenceError("fetch client projects", err)
	}
	return projects, nil
}

func (c *CRM) ProjectsByRep(ctx context.Context, repID int64) ([]*entity.Project, error) {
	projects, err := c.Projects.ListByRepID(ctx, repID)
	if err != nil {
		return nil, persistenceError("fetch rep projects", err)
	}
	return projects, nil
}

func (c *CRM) UpdateProject(ctx context.Context, id int64, input UpdateProjectInput) (*entity.Project, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	patch := input.ProjectPatch
	patch.InstallationProgress = input.InstallationProgress
	p, err := c.Projects.Update(ctx, id, patch)
	if err != nil {
		return nil, persistenceError("update project", err)
	}
	if p == nil {
		return nil, notFound("project")
	}
	return p, nil
}

func (c *CRM) CreateTask(ctx context.Context, input CreateTaskInput) (*entity.Task, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	t := &entity.Task{
		RepID:       input.RepID,
		LeadID:      input.LeadID,
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	t.ApplyDefaults()
	if err := c.Tasks.Create(ctx, t); err != nil {
		return nil, persistenceError("create task", err)
	}
	return t, nil
}

func (c *CRM) TasksByRep(ctx context.Context, repID int64) ([]*entity.Task, error) {
	tasks, err := c.Tasks.ListByRepID(ctx, repID)
	if err != nil {
		return nil, persistenceError("fetch tasks", err)
	}
	return tasks, nil
}

func (c *CRM) UpdateTask(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	t, err := c.Tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, persistenceError("update task", err)
	}
	if t == nil {
		return nil, notFound("task")
	}
	return t, nil
}

func (c *CRM) CreateMessage(ctx context.Context, input CreateMessageInput) (*entity.Message, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	m := &entity.Message{
		ProjectID:   input.ProjectID,
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Subject:     input.Subject,
		Message:     input.Message,
		IsBot:       input.IsBot,
	}
	if err := c.Messages.Create(ctx, m); err != nil {
		return nil, persistenceError("send message", err)
	}
	return m, nil
}

func (c *CRM) MessagesByProject(ctx context.Context, projectID int64) ([]*entity.Message, error) {
	messages, err := c.Messages.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, persistenceError("fetch messages", err)
	}
	return messages, nil
}

func (c *CRM) CreateInstallationUpdate(ctx context.Context, input CreateInstallationUpdateInput) (*entity.InstallationUpdate, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	u := &entity.InstallationUpdate{
		ProjectID: input.ProjectID,
		Status:    input.Status,
		Progress:  input.Progress,
		Note:      input.Note,
	}
	if err := c.InstallationUpdates.Create(ctx, u); err != nil {
		return nil, persistenceError("create installation update", err)
	}
	return u, nil
}

func (c *CRM) InstallationUpdatesByProject(ctx context.Context, projectID int64) ([]*entity.InstallationUpdate, error) {
	updates, err := c.InstallationUpdates.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, persistenceError("fetch installation updates", err)
	}
	return updates, nil
}
