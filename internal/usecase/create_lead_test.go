package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/integration/pushlap"
	"github.com/liv8solar/solar-leads/internal/infra/memory"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func idPtr(i int64) *int64    { return &i }

func validLeadInput() CreateLeadInput {
	return CreateLeadInput{
		FirstName:   "Ana",
		LastName:    "Lima",
		Email:       "ana@example.com",
		Phone:       "(650) 253-0000",
		MonthlyBill: strPtr("$150.00"),
		HomeSize:    intPtr(1800),
		AffiliateID: "aff-9",
	}
}

func expectLeadFanOut(p *ports, emailErr error) {
	p.email.On("NotifyLead", mock.Anything, mock.Anything).Return(emailErr)
	p.referral.On("TrackReferral", mock.Anything, mock.Anything).Return(&pushlap.Result{ID: "r1"}, nil)
	p.sheets.On("ExportLead", mock.Anything, mock.Anything, (*entity.SolarCalculation)(nil)).Return(nil)
	p.automation.On("SendLead", mock.Anything, "lead_submission", mock.Anything, (*entity.SolarCalculation)(nil)).Return(nil)
}

func newLeadUseCase(repo entity.LeadRepositoryInterface, p *ports, queue NotificationPublisher) *CreateLeadUseCase {
	return NewCreateLeadUseCase(repo, NewDispatcher(p.notifications(), queue, nil), p.platform, nil)
}

func TestCreateLeadEmailFailureDoesNotStopOtherSteps(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	expectLeadFanOut(p, errors.New("smtp down"))

	out, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 1, store.Leads.Count())
	p.referral.AssertCalled(t, "TrackReferral", mock.Anything, mock.Anything)
	p.sheets.AssertCalled(t, "ExportLead", mock.Anything, mock.Anything, (*entity.SolarCalculation)(nil))
	p.automation.AssertCalled(t, "SendLead", mock.Anything, "lead_submission", mock.Anything, (*entity.SolarCalculation)(nil))

	email, ok := out.Report.Outcome(StepEmail)
	require.True(t, ok)
	assert.Equal(t, StatusFailed, email.Status)
	for _, step := range []string{StepReferral, StepSheets, StepAutomation} {
		o, ok := out.Report.Outcome(step)
		require.True(t, ok, step)
		assert.Equal(t, StatusOK, o.Status, step)
	}
}

func TestCreateLeadWithoutOpenSolarOmitsProjectID(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	expectLeadFanOut(p, nil)

	out, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	assert.Empty(t, out.OpenSolarProjectID)
	o, _ := out.Report.Outcome(StepOpenSolar)
	assert.Equal(t, StatusSkipped, o.Status)
	assert.Equal(t, ReasonNotConfigured, o.Reason)
	p.platform.AssertNotCalled(t, "CreateProspect", mock.Anything, mock.Anything)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "openSolarProjectId")
	assert.NotContains(t, string(body), "Report")
	assert.Contains(t, string(body), `"firstName":"Ana"`)
}

func TestCreateLeadMergesOpenSolarProjectID(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(true)
	expectLeadFanOut(p, nil)
	p.platform.On("CreateProspect", mock.Anything, mock.MatchedBy(func(in opensolar.ProspectInput) bool {
		return in.Email == "ana@example.com" && in.MonthlyBill == "150" && in.HomeSize == 1800 && in.LeadSource == "website"
	})).Return(&opensolar.Project{ID: 501, Identifier: "LIV8-1"}, nil)

	out, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	assert.Equal(t, "501", out.OpenSolarProjectID)
	body, _ := json.Marshal(out)
	assert.Contains(t, string(body), `"openSolarProjectId":"501"`)
}

func TestCreateLeadSwallowsOpenSolarFailure(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(true)
	expectLeadFanOut(p, nil)
	p.platform.On("CreateProspect", mock.Anything, mock.Anything).Return(nil, errors.New("auth failed"))

	out, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	assert.Empty(t, out.OpenSolarProjectID)
	o, _ := out.Report.Outcome(StepOpenSolar)
	assert.Equal(t, StatusFailed, o.Status)
}

func TestCreateLeadValidationFailureStoresNothing(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(true)

	input := validLeadInput()
	input.Email = ""
	input.Phone = ""

	_, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), input)
	require.Error(t, err)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeValidation, de.Code)
	fields := []string{}
	for _, f := range de.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "phone"}, fields)
	assert.Equal(t, 0, store.Leads.Count())
	p.email.AssertNotCalled(t, "NotifyLead", mock.Anything, mock.Anything)
}

func TestCreateLeadRejectsBadBillAndEmail(t *testing.T) {
	store := memory.NewStore()
	input := validLeadInput()
	input.Email = "not-an-email"
	input.MonthlyBill = strPtr("-20")

	_, err := newLeadUseCase(store.Leads, newPorts(false), nil).Execute(context.Background(), input)

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Len(t, de.Fields, 2)
	assert.Equal(t, 0, store.Leads.Count())
}

func TestCreateLeadRejectsExponentAndOversizedBills(t *testing.T) {
	store := memory.NewStore()
	uc := newLeadUseCase(store.Leads, newPorts(false), nil)

	for _, bill := range []string{"1e5", "1e2000000", "100000.01", "150.555"} {
		t.Run(bill, func(t *testing.T) {
			input := validLeadInput()
			input.MonthlyBill = strPtr(bill)

			_, err := uc.Execute(context.Background(), input)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			require.Len(t, de.Fields, 1)
			assert.Equal(t, "monthlyBill", de.Fields[0].Field)
		})
	}
	assert.Equal(t, 0, store.Leads.Count())
}

func TestCreateLeadIDsIncrease(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	expectLeadFanOut(p, nil)
	uc := newLeadUseCase(store.Leads, p, nil)

	var last int64
	for i := 0; i < 5; i++ {
		out, err := uc.Execute(context.Background(), validLeadInput())
		require.NoError(t, err)
		assert.Greater(t, out.ID, last)
		last = out.ID
	}
}

func TestCreateLeadNormalizesAndDefaults(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	expectLeadFanOut(p, nil)

	input := validLeadInput()
	input.MonthlyBill = strPtr("$1,250.50")
	out, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "1250.5", *out.MonthlyBill)
	assert.Equal(t, "website", out.LeadSource)
	assert.Equal(t, "new", out.Status)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreateLeadPassesAffiliateToReferral(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	p.email.On("NotifyLead", mock.Anything, mock.Anything).Return(nil)
	p.referral.On("TrackReferral", mock.Anything, mock.MatchedBy(func(in pushlap.ReferralInput) bool {
		return in.AffiliateID == "aff-9" && in.Name == "Ana Lima" && in.ReferredUserExternalID == "1"
	})).Return(&pushlap.Result{}, nil)
	p.sheets.On("ExportLead", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	p.automation.On("SendLead", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := newLeadUseCase(store.Leads, p, nil).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)
	p.referral.AssertExpectations(t)
}

func TestCreateLeadQueuesNotifications(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	pub := new(MockPublisher)
	pub.On("PublishNotification", mock.Anything, mock.MatchedBy(func(job entity.NotificationJob) bool {
		return job.Kind == entity.KindLeadSubmission && job.ID != "" && job.Lead != nil && job.AffiliateID == "aff-9"
	})).Return(nil)

	out, err := newLeadUseCase(store.Leads, p, pub).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	pub.AssertExpectations(t)
	p.email.AssertNotCalled(t, "NotifyLead", mock.Anything, mock.Anything)
	_, ran := out.Report.Outcome(StepEmail)
	assert.False(t, ran)
	_, ok := out.Report.Outcome(StepOpenSolar)
	assert.True(t, ok)
}

func TestCreateLeadFallsBackInlineWhenPublishFails(t *testing.T) {
	store := memory.NewStore()
	p := newPorts(false)
	expectLeadFanOut(p, nil)
	pub := new(MockPublisher)
	pub.On("PublishNotification", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	out, err := newLeadUseCase(store.Leads, p, pub).Execute(context.Background(), validLeadInput())
	require.NoError(t, err)

	p.email.AssertCalled(t, "NotifyLead", mock.Anything, mock.Anything)
	o, _ := out.Report.Outcome(StepEmail)
	assert.Equal(t, StatusOK, o.Status)
}

type failingLeadRepo struct {
	entity.LeadRepositoryInterface
}

func (failingLeadRepo) Create(context.Context, *entity.Lead) error {
	return errors.New("disk full")
}

func TestCreateLeadPersistenceFailureSkipsFanOut(t *testing.T) {
	p := newPorts(true)

	_, err := newLeadUseCase(failingLeadRepo{}, p, nil).Execute(context.Background(), validLeadInput())
	require.Error(t, err)

	var te *TechnicalError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, CodePersistence, te.Code)
	p.email.AssertNotCalled(t, "NotifyLead", mock.Anything, mock.Anything)
	p.platform.AssertNotCalled(t, "CreateProspect", mock.Anything, mock.Anything)
}
