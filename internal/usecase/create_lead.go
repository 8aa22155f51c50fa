package usecase

import (
	"context"
	"strconv"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/opensolar"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// LeadObserver is told about each stored lead, e.g. to count it.
type LeadObserver func(lead *entity.Lead)

type CreateLeadUseCase struct {
	Repo        entity.LeadRepositoryInterface
	Dispatcher  *Dispatcher
	Platform    DesignPlatform
	Logger      *logger.Logger
	Observe     LeadObserver
	ObserveStep StepObserver
}

func NewCreateLeadUseCase(
	repo entity.LeadRepositoryInterface,
	dispatcher *Dispatcher,
	platform DesignPlatform,
	log *logger.Logger,
) *CreateLeadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CreateLeadUseCase{
		Repo:       repo,
		Dispatcher: dispatcher,
		Platform:   platform,
		Logger:     log,
	}
}

// Execute validates and stores the lead, then fans out. Only validation
// and storage errors are returned; integration failures end up in the
// report.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	lead := &entity.Lead{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		HomeSize:    input.HomeSize,
		RoofType:    input.RoofType,
		EnergyGoals: input.EnergyGoals,
	}
	if input.LeadSource != nil {
		lead.LeadSource = *input.LeadSource
	}
	if input.MonthlyBill != nil {
		bill, err := normalizeBill(*input.MonthlyBill)
		if err != nil {
			return nil, err
		}
		lead.MonthlyBill = &bill
	}
	lead.ApplyDefaults()

	if err := uc.Repo.Create(ctx, lead); err != nil {
		uc.Logger.WithContext(ctx).DatabaseError("create lead", err)
		return nil, persistenceError("create lead", err)
	}
	if uc.Observe != nil {
		uc.Observe(lead)
	}
	uc.Logger.WithContext(ctx).Info("lead created", "lead_id", lead.ID, "lead_source", lead.LeadSource)

	out := &CreateLeadOutput{Lead: lead}

	if uc.Dispatcher != nil {
		out.Report = uc.Dispatcher.Dispatch(ctx, entity.NotificationJob{
			Kind:        entity.KindLeadSubmission,
			AffiliateID: input.AffiliateID,
			Lead:        lead,
		})
	}

	report := FanOutReport{Kind: string(entity.KindLeadSubmission)}
	var project *opensolar.Project
	outcome := report.attempt(ctx, StepOpenSolar, configured(uc.Platform), func(ctx context.Context) error {
		p, err := uc.Platform.CreateProspect(ctx, prospectFromLead(lead))
		project = p
		return err
	})
	if outcome.Status == StatusOK && project != nil {
		out.OpenSolarProjectID = strconv.FormatInt(project.ID, 10)
		uc.Logger.WithContext(ctx).Info("opensolar prospect created", "lead_id", lead.ID, "opensolar_project_id", project.ID)
	}
	if outcome.Status == StatusFailed {
		uc.Logger.WithContext(ctx).IntegrationError(StepOpenSolar, "create prospect", outcome.Err)
	}
	if uc.ObserveStep != nil {
		uc.ObserveStep(outcome)
	}

	if out.Report == nil {
		out.Report = &report
	} else {
		out.Report.Outcomes = append(out.Report.Outcomes, outcome)
	}
	return out, nil
}

// normalizeBill stores bills in one canonical form, e.g. "$1,250.50" as
// "1250.5".
func normalizeBill(raw string) (string, error) {
	d, err := ParseMonthlyBill(raw)
	if err != nil {
		return "", &DomainError{
			Code:    CodeValidation,
			Message: "invalid fields: monthlyBill",
			Fields:  []ValidationError{{Field: "monthlyBill", Message: msgMoney}},
		}
	}
	return d.String(), nil
}

func prospectFromLead(lead *entity.Lead) opensolar.ProspectInput {
	in := opensolar.ProspectInput{
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Email:      lead.Email,
		Phone:      lead.Phone,
		LeadSource: lead.LeadSource,
	}
	if lead.Address != nil {
		in.Address = *lead.Address
	}
	if lead.MonthlyBill != nil {
		in.MonthlyBill = *lead.MonthlyBill
	}
	if lead.HomeSize != nil {
		in.HomeSize = *lead.HomeSize
	}
	if lead.RoofType != nil {
		in.RoofType = *lead.RoofType
	}
	if lead.EnergyGoals != nil {
		in.EnergyGoals = *lead.EnergyGoals
	}
	return in
}
