package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/googlesolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/pushlap"
)

type MockEmailNotifier struct {
	mock.Mock
}

func (m *MockEmailNotifier) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockEmailNotifier) NotifyLead(ctx context.Context, lead *entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockEmailNotifier) NotifyCalculation(ctx context.Context, calc *entity.SolarCalculation) error {
	return m.Called(ctx, calc).Error(0)
}

func (m *MockEmailNotifier) NotifyConsultation(ctx context.Context, c *entity.Consultation, lead *entity.Lead) error {
	return m.Called(ctx, c, lead).Error(0)
}

type MockReferralTracker struct {
	mock.Mock
}

func (m *MockReferralTracker) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockReferralTracker) TrackReferral(ctx context.Context, in pushlap.ReferralInput) (*pushlap.Result, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pushlap.Result), args.Error(1)
}

func (m *MockReferralTracker) TrackProjectSale(ctx context.Context, email string, value float64, projectID string) error {
	return m.Called(ctx, email, value, projectID).Error(0)
}

type MockSheetsExporter struct {
	mock.Mock
}

func (m *MockSheetsExporter) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockSheetsExporter) ExportLead(ctx context.Context, lead *entity.Lead, calc *entity.SolarCalculation) error {
	return m.Called(ctx, lead, calc).Error(0)
}

type MockAutomationWebhook struct {
	mock.Mock
}

func (m *MockAutomationWebhook) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockAutomationWebhook) SendLead(ctx context.Context, formType string, lead *entity.Lead, calc *entity.SolarCalculation) error {
	return m.Called(ctx, formType, lead, calc).Error(0)
}

func (m *MockAutomationWebhook) SendProjectUpdate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockDesignPlatform struct {
	mock.Mock
}

func (m *MockDesignPlatform) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockDesignPlatform) CreateProspect(ctx context.Context, in opensolar.ProspectInput) (*opensolar.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opensolar.Project), args.Error(1)
}

func (m *MockDesignPlatform) GetProject(ctx context.Context, id int64) (*opensolar.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opensolar.Project), args.Error(1)
}

func (m *MockDesignPlatform) UpdateProject(ctx context.Context, id int64, updates opensolar.ProjectCreate) (*opensolar.Project, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opensolar.Project), args.Error(1)
}

func (m *MockDesignPlatform) ListProjects(ctx context.Context) ([]opensolar.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]opensolar.Project), args.Error(1)
}

func (m *MockDesignPlatform) GetSystemDetails(ctx context.Context, id int64) ([]opensolar.SystemDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]opensolar.SystemDetails), args.Error(1)
}

func (m *MockDesignPlatform) ProjectSummary(ctx context.Context, id int64) (*opensolar.ProjectOverview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opensolar.ProjectOverview), args.Error(1)
}

func (m *MockDesignPlatform) CreateWebhook(ctx context.Context, endpoint string, trigger, payload []string) (*opensolar.Webhook, error) {
	args := m.Called(ctx, endpoint, trigger, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opensolar.Webhook), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(ctx context.Context, job entity.NotificationJob) error {
	return m.Called(ctx, job).Error(0)
}

type MockRoofInsights struct {
	mock.Mock
}

func (m *MockRoofInsights) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockRoofInsights) InsightsForAddress(ctx context.Context, address string) (*googlesolar.Summary, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googlesolar.Summary), args.Error(1)
}

func (m *MockRoofInsights) InsightsForBill(ctx context.Context, address string, bill float64) (*googlesolar.Summary, error) {
	args := m.Called(ctx, address, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googlesolar.Summary), args.Error(1)
}

// ports bundles one configured mock per fan-out adapter.
type ports struct {
	email      *MockEmailNotifier
	referral   *MockReferralTracker
	sheets     *MockSheetsExporter
	automation *MockAutomationWebhook
	platform   *MockDesignPlatform
}

func newPorts(platformConfigured bool) *ports {
	p := &ports{
		email:      new(MockEmailNotifier),
		referral:   new(MockReferralTracker),
		sheets:     new(MockSheetsExporter),
		automation: new(MockAutomationWebhook),
		platform:   new(MockDesignPlatform),
	}
	p.email.On("Configured").Return(true).Maybe()
	p.referral.On("Configured").Return(true).Maybe()
	p.sheets.On("Configured").Return(true).Maybe()
	p.automation.On("Configured").Return(true).Maybe()
	p.platform.On("Configured").Return(platformConfigured).Maybe()
	return p
}

func (p *ports) notifications() *Notifications {
	return NewNotifications(p.email, p.referral, p.sheets, p.automation, nil, nil)
}
