package memory

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/entity"
)

type UserRepository struct {
	t *table[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{t: newTable(cloneUser)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.t.insert(u, func(row *entity.User, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
		row.UpdatedAt = now
	})
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.t.filter(nil), nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	u, ok := r.t.update(id, func(row *entity.User, now time.Time) {
		patch.Apply(row)
		row.UpdatedAt = now
	})
	if !ok {
		return nil, nil
	}
	return u, nil
}

type ProjectRepository struct {
	t *table[entity.Project]
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{t: newTable(cloneProject)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	r.t.insert(p, func(row *entity.Project, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
		row.UpdatedAt = now
		row.ApplyDefaults()
	})
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*entity.Project, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	return r.t.filter(nil), nil
}

func (r *ProjectRepository) ListByClientID(ctx context.Context, clientID int64) ([]*entity.Project, error) {
	return r.t.filter(func(p *entity.Project) bool { return sameID(p.ClientID, clientID) }), nil
}

func (r *ProjectRepository) ListByRepID(ctx context.Context, repID int64) ([]*entity.Project, error) {
	return r.t.filter(func(p *entity.Project) bool { return sameID(p.RepID, repID) }), nil
}

func (r *ProjectRepository) Update(ctx context.Context, id int64, patch entity.ProjectPatch) (*entity.Project, error) {
	p, ok := r.t.update(id, func(row *entity.Project, now time.Time) {
		patch.Apply(row)
		row.UpdatedAt = now
	})
	if !ok {
		return nil, nil
	}
	return p, nil
}

type TaskRepository struct {
	t *table[entity.Task]
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{t: newTable(cloneTask)}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	r.t.insert(task, func(row *entity.Task, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
		row.UpdatedAt = now
		row.ApplyDefaults()
	})
	return nil
}

func (r *TaskRepository) ListByRepID(ctx context.Context, repID int64) ([]*entity.Task, error) {
	return r.t.filter(func(t *entity.Task) bool { return sameID(t.RepID, repID) }), nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, patch entity.TaskPatch) (*entity.Task, error) {
	task, ok := r.t.update(id, func(row *entity.Task, now time.Time) {
		patch.Apply(row)
		row.UpdatedAt = now
	})
	if !ok {
		return nil, nil
	}
	return task, nil
}

type MessageRepository struct {
	t *table[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{t: newTable(cloneMessage)}
}

func (r *MessageRepository) Create(ctx context.Context, m *entity.Message) error {
	r.t.insert(m, func(row *entity.Message, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
	})
	return nil
}

func (r *MessageRepository) ListByProjectID(ctx context.Context, projectID int64) ([]*entity.Message, error) {
	return r.t.filter(func(m *entity.Message) bool { return sameID(m.ProjectID, projectID) }), nil
}

type InstallationUpdateRepository struct {
	t *table[entity.InstallationUpdate]
}

func NewInstallationUpdateRepository() *InstallationUpdateRepository {
	return &InstallationUpdateRepository{t: newTable(cloneInstallationUpdate)}
}

func (r *InstallationUpdateRepository) Create(ctx context.Context, u *entity.InstallationUpdate) error {
	r.t.insert(u, func(row *entity.InstallationUpdate, id int64, now time.Time) {
		row.ID = id
		row.CreatedAt = now
	})
	return nil
}

func (r *InstallationUpdateRepository) ListByProjectID(ctx context.Context, projectID int64) ([]*entity.InstallationUpdate, error) {
	return r.t.filter(func(u *entity.InstallationUpdate) bool { return u.ProjectID == projectID }), nil
}
