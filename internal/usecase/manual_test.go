package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/googlesolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/memory"
)

func TestCreateProspect(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		p := newPorts(false)
		_, err := NewCreateProspectUseCase(memory.NewLeadRepository(), p.platform, nil).Execute(ctx, CreateProspectInput{LeadID: 1})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("unknown lead", func(t *testing.T) {
		p := newPorts(true)
		_, err := NewCreateProspectUseCase(memory.NewLeadRepository(), p.platform, nil).Execute(ctx, CreateProspectInput{LeadID: 42})
		var de *DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, CodeNotFound, de.Code)
	})

	t.Run("platform failure is surfaced", func(t *testing.T) {
		store := memory.NewStore()
		lead := seedLead(t, store)
		p := newPorts(true)
		p.platform.On("CreateProspect", mock.Anything, mock.Anything).Return(nil, errors.New("502"))

		_, err := NewCreateProspectUseCase(store.Leads, p.platform, nil).Execute(ctx, CreateProspectInput{LeadID: lead.ID})
		var te *TechnicalError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, CodeIntegration, te.Code)
		assert.Equal(t, StepOpenSolar, te.Service)
	})

	t.Run("success", func(t *testing.T) {
		store := memory.NewStore()
		lead := seedLead(t, store)
		p := newPorts(true)
		p.platform.On("CreateProspect", mock.Anything, mock.Anything).Return(&opensolar.Project{ID: 77, Identifier: "LIV8-9"}, nil)

		out, err := NewCreateProspectUseCase(store.Leads, p.platform, nil).Execute(ctx, CreateProspectInput{LeadID: lead.ID})
		require.NoError(t, err)
		assert.Equal(t, CreateProspectOutput{OpenSolarProjectID: 77, OpenSolarIdentifier: "LIV8-9", LeadID: lead.ID}, *out)
	})
}

func TestExportLead(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lead := seedLead(t, store)
	require.NoError(t, store.Calculations.Create(ctx, &entity.SolarCalculation{LeadID: idPtr(lead.ID), MonthlyBill: "100"}))
	require.NoError(t, store.Calculations.Create(ctx, &entity.SolarCalculation{LeadID: idPtr(lead.ID), MonthlyBill: "200"}))

	sheets := new(MockSheetsExporter)
	sheets.On("Configured").Return(true)
	sheets.On("ExportLead", mock.Anything, mock.Anything,
		mock.MatchedBy(func(c *entity.SolarCalculation) bool { return c != nil && c.MonthlyBill == "200" })).Return(nil)

	uc := NewExportLeadUseCase(store.Leads, store.Calculations, sheets, nil)

	out, err := uc.Execute(ctx, ExportLeadInput{LeadID: lead.ID})
	require.NoError(t, err)
	assert.Equal(t, "Exported successfully", out.Message)

	_, err = uc.Execute(ctx, ExportLeadInput{LeadID: 999})
	assert.True(t, IsDomainError(err))

	off := new(MockSheetsExporter)
	off.On("Configured").Return(false)
	_, err = NewExportLeadUseCase(store.Leads, store.Calculations, off, nil).Execute(ctx, ExportLeadInput{LeadID: lead.ID})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCompleteProjectTracksSale(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lead := seedLead(t, store)
	project := &entity.Project{LeadID: idPtr(lead.ID), ProjectName: "Lima roof"}
	require.NoError(t, store.Projects.Create(ctx, project))

	referral := new(MockReferralTracker)
	referral.On("Configured").Return(true)
	referral.On("TrackProjectSale", mock.Anything, "ana@example.com", 32000.0, "1").Return(nil)

	uc := NewCompleteProjectUseCase(store.Projects, store.Leads, referral, nil)
	fixed := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	out, err := uc.Execute(ctx, CompleteProjectInput{ProjectID: project.ID, TotalValue: 32000})
	require.NoError(t, err)

	assert.Equal(t, "Project marked as complete", out.Message)
	assert.Equal(t, entity.ProjectStatusCompleted, out.Project.InstallationStatus)
	assert.Equal(t, 100, out.Project.InstallationProgress)
	assert.True(t, fixed.Equal(*out.Project.ActualCompletionDate))
	referral.AssertExpectations(t)
}

func TestCompleteProjectWithoutValueSkipsSale(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lead := seedLead(t, store)
	project := &entity.Project{LeadID: idPtr(lead.ID), ProjectName: "x"}
	require.NoError(t, store.Projects.Create(ctx, project))

	referral := new(MockReferralTracker)
	uc := NewCompleteProjectUseCase(store.Projects, store.Leads, referral, nil)

	_, err := uc.Execute(ctx, CompleteProjectInput{ProjectID: project.ID})
	require.NoError(t, err)
	referral.AssertNotCalled(t, "TrackProjectSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	_, err = uc.Execute(ctx, CompleteProjectInput{ProjectID: 404})
	assert.True(t, IsDomainError(err))
}

func TestHandleOpenSolarEvent(t *testing.T) {
	automation := new(MockAutomationWebhook)
	automation.On("Configured").Return(true)
	automation.On("SendProjectUpdate", mock.Anything, "8812").Return(nil).Once()
	uc := NewHandleOpenSolarEventUseCase(automation, nil)

	var event OpenSolarEvent
	require.NoError(t, json.Unmarshal([]byte(`{"model_name":"project","event_type":"UPDATE","model_pk":8812,"extra":{"a":1}}`), &event))
	uc.Execute(context.Background(), event)

	uc.Execute(context.Background(), OpenSolarEvent{ModelName: "contact", EventType: "UPDATE", ModelPK: 1})
	uc.Execute(context.Background(), OpenSolarEvent{ModelName: "project", EventType: "CREATE", ModelPK: 2})
	uc.Execute(context.Background(), OpenSolarEvent{ModelName: "project", EventType: "UPDATE"})

	automation.AssertExpectations(t)
	automation.AssertNumberOfCalls(t, "SendProjectUpdate", 1)
}

func TestSolarInsights(t *testing.T) {
	ctx := context.Background()

	insights := new(MockRoofInsights)
	insights.On("Configured").Return(true)
	insights.On("InsightsForBill", mock.Anything, "1 Main St", 130.0).Return(&googlesolar.Summary{}, nil)
	uc := NewSolarInsightsUseCase(insights, nil)

	_, err := uc.ForBill(ctx, BillMatchInput{Address: "1 Main St", MonthlyBill: json.Number("130")})
	require.NoError(t, err)

	_, err = uc.ForAddress(ctx, SolarInsightsInput{})
	assert.True(t, IsDomainError(err))

	_, err = uc.ForBill(ctx, BillMatchInput{Address: "1 Main St"})
	assert.True(t, IsDomainError(err))

	off := new(MockRoofInsights)
	off.On("Configured").Return(false)
	_, err = NewSolarInsightsUseCase(off, nil).ForAddress(ctx, SolarInsightsInput{Address: "1 Main St"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOpenSolarProjectsWrapsErrors(t *testing.T) {
	ctx := context.Background()

	p := newPorts(true)
	p.platform.On("GetProject", mock.Anything, int64(5)).Return(nil, errors.New("boom"))
	p.platform.On("ListProjects", mock.Anything).Return([]opensolar.Project{{ID: 1}}, nil)
	uc := NewOpenSolarProjects(p.platform, nil)

	_, err := uc.Get(ctx, 5)
	assert.True(t, IsTechnicalError(err))

	projects, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	_, err = NewOpenSolarProjects(newPorts(false).platform, nil).Summary(ctx, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLeadQueries(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lead := seedLead(t, store)
	other := seedLead(t, store)
	require.NoError(t, store.Calculations.Create(ctx, &entity.SolarCalculation{LeadID: idPtr(lead.ID)}))
	require.NoError(t, store.Consultations.Create(ctx, &entity.Consultation{LeadID: idPtr(lead.ID)}))

	q := NewLeadQueries(store.Leads, store.Calculations, store.Consultations)

	list, err := q.ListWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Calculations, 1)
	assert.Len(t, list[0].Consultations, 1)
	assert.Equal(t, other.ID, list[1].ID)
	assert.NotNil(t, list[1].Calculations)

	_, err = q.Get(ctx, 999)
	assert.True(t, IsDomainError(err))
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	q := NewLeadQueries(store.Leads, store.Calculations, store.Consultations)

	empty, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, AdminStats{}, *empty)

	for i := 0; i < 4; i++ {
		seedLead(t, store)
	}
	q.now = func() time.Time { return time.Now().AddDate(0, 1, 0) }

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalLeads)
	assert.Equal(t, 0, stats.LeadsThisMonth)
	assert.Equal(t, int64(100000), stats.TotalRevenue)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 30, stats.ConversionRate)
	assert.Equal(t, int64(0), stats.RevenueThisMonth)
}

func TestCRMUpdatesReturnNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	crm := NewCRM(store.Users, store.Projects, store.Tasks, store.Messages, store.InstallationUpdates)

	u, err := crm.CreateUser(ctx, CreateUserInput{Email: "rep@example.com", FirstName: "R", LastName: "P", Role: "rep"})
	require.NoError(t, err)
	assert.True(t, u.IsActive)

	role := "admin"
	updated, err := crm.UpdateUser(ctx, u.ID, UpdateUserInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	bad := "owner"
	_, err = crm.UpdateUser(ctx, u.ID, UpdateUserInput{Role: &bad})
	assert.True(t, IsDomainError(err))

	_, err = crm.UpdateUser(ctx, 99, UpdateUserInput{})
	assert.True(t, IsDomainError(err))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, &DomainError{Code: CodeValidation}, ErrNotFound)

	task, err := crm.CreateTask(ctx, CreateTaskInput{Title: "call", RepID: idPtr(u.ID)})
	require.NoError(t, err)
	assert.Equal(t, "medium", task.Priority)
	assert.Equal(t, "pending", task.Status)

	tasks, err := crm.TasksByRep(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = crm.CreateInstallationUpdate(ctx, CreateInstallationUpdateInput{ProjectID: 1, Status: "permits", Progress: 120})
	assert.True(t, IsDomainError(err))
}
