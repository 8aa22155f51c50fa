package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration/pushlap"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// StepObserver is told about every finished step, e.g. to count it.
type StepObserver func(o StepOutcome)

// Notifications runs the best-effort fan-out for a stored submission. It
// is used inline by the dispatcher and as the queue worker's processor.
type Notifications struct {
	Email      EmailNotifier
	Referral   ReferralTracker
	Sheets     SheetsExporter
	Automation AutomationWebhook
	Logger     *logger.Logger
	Observe    StepObserver
}

func NewNotifications(
	email EmailNotifier,
	referral ReferralTracker,
	sheets SheetsExporter,
	automation AutomationWebhook,
	log *logger.Logger,
	observe StepObserver,
) *Notifications {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifications{
		Email:      email,
		Referral:   referral,
		Sheets:     sheets,
		Automation: automation,
		Logger:     log,
		Observe:    observe,
	}
}

// Process satisfies the queue worker. Step failures are only reported;
// the error is for jobs that cannot be run at all.
func (n *Notifications) Process(ctx context.Context, job entity.NotificationJob) error {
	if err := checkJob(job); err != nil {
		return err
	}
	n.Run(ctx, job)
	return nil
}

func checkJob(job entity.NotificationJob) error {
	switch job.Kind {
	case entity.KindLeadSubmission:
		if job.Lead == nil {
			return fmt.Errorf("job %s: lead submission without lead", job.ID)
		}
	case entity.KindSolarCalculation:
		if job.Calculation == nil {
			return fmt.Errorf("job %s: calculation job without calculation", job.ID)
		}
	case entity.KindConsultationScheduled:
		if job.Consultation == nil {
			return fmt.Errorf("job %s: consultation job without consultation", job.ID)
		}
	default:
		return fmt.Errorf("job %s: unknown kind %q", job.ID, job.Kind)
	}
	return nil
}

// Run attempts every step for the job kind, in fixed order, and logs the
// report as one record.
func (n *Notifications) Run(ctx context.Context, job entity.NotificationJob) FanOutReport {
	report := FanOutReport{JobID: job.ID, Kind: string(job.Kind)}
	if err := checkJob(job); err != nil {
		n.Logger.WithContext(ctx).Error("notification job rejected", "error", err)
		return report
	}

	switch job.Kind {
	case entity.KindLeadSubmission:
		n.runLead(ctx, &report, job)
	case entity.KindSolarCalculation:
		n.runCalculation(ctx, &report, job)
	case entity.KindConsultationScheduled:
		n.runConsultation(ctx, &report, job)
	}

	n.finish(ctx, &report)
	return report
}

func (n *Notifications) runLead(ctx context.Context, r *FanOutReport, job entity.NotificationJob) {
	lead := job.Lead

	r.attempt(ctx, StepEmail, configured(n.Email), func(ctx context.Context) error {
		return n.Email.NotifyLead(ctx, lead)
	})
	r.attempt(ctx, StepReferral, configured(n.Referral), func(ctx context.Context) error {
		_, err := n.Referral.TrackReferral(ctx, pushlap.ReferralInput{
			AffiliateID:            job.AffiliateID,
			Name:                   lead.FullName(),
			Email:                  lead.Email,
			ReferredUserExternalID: strconv.FormatInt(lead.ID, 10),
		})
		return err
	})
	r.attempt(ctx, StepSheets, configured(n.Sheets), func(ctx context.Context) error {
		return n.Sheets.ExportLead(ctx, lead, nil)
	})
	r.attempt(ctx, StepAutomation, configured(n.Automation), func(ctx context.Context) error {
		return n.Automation.SendLead(ctx, string(entity.KindLeadSubmission), lead, nil)
	})
}

// runCalculation sends the automation webhook with job.Lead, which is nil
// when the calculation has no known lead.
func (n *Notifications) runCalculation(ctx context.Context, r *FanOutReport, job entity.NotificationJob) {
	r.attempt(ctx, StepEmail, configured(n.Email), func(ctx context.Context) error {
		return n.Email.NotifyCalculation(ctx, job.Calculation)
	})
	r.attempt(ctx, StepAutomation, configured(n.Automation), func(ctx context.Context) error {
		return n.Automation.SendLead(ctx, string(entity.KindSolarCalculation), job.Lead, job.Calculation)
	})
}

func (n *Notifications) runConsultation(ctx context.Context, r *FanOutReport, job entity.NotificationJob) {
	if job.Lead == nil {
		r.skip(StepEmail, ReasonLeadNotFound)
		r.skip(StepAutomation, ReasonLeadNotFound)
		return
	}

	r.attempt(ctx, StepEmail, configured(n.Email), func(ctx context.Context) error {
		return n.Email.NotifyConsultation(ctx, job.Consultation, job.Lead)
	})
	r.attempt(ctx, StepAutomation, configured(n.Automation), func(ctx context.Context) error {
		return n.Automation.SendLead(ctx, string(entity.KindConsultationScheduled), job.Lead, nil)
	})
}

func (n *Notifications) finish(ctx context.Context, r *FanOutReport) {
	if n.Observe != nil {
		for _, o := range r.Outcomes {
			n.Observe(o)
		}
	}

	log := n.Logger.WithContext(ctx)
	if len(r.Failed()) > 0 {
		log.Warn("fan-out finished with failures", r.LogAttrs()...)
		return
	}
	log.Info("fan-out finished", r.LogAttrs()...)
}

type configurable interface {
	Configured() bool
}

// configured treats a nil port as unconfigured.
func configured(p configurable) bool {
	if p == nil {
		return false
	}
	return p.Configured()
}
