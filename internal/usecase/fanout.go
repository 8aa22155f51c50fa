package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const (
	StepEmail      = "email"
	StepReferral   = "referral"
	StepSheets     = "sheets"
	StepAutomation = "automation"
	StepOpenSolar  = "opensolar"
)

type StepStatus string

const (
	StatusOK      StepStatus = "ok"
	StatusSkipped StepStatus = "skipped"
	StatusFailed  StepStatus = "failed"
)

const (
	ReasonNotConfigured = "not configured"
	ReasonLeadNotFound  = "lead not found"
)

type StepOutcome struct {
	Step   string
	Status StepStatus
	Reason string
	Err    error
}

// FanOutReport lists one outcome per attempted step, in run order.
type FanOutReport struct {
	JobID    string
	Kind     string
	Outcomes []StepOutcome
}

// Outcome returns the outcome recorded for step.
func (r *FanOutReport) Outcome(step string) (StepOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Step == step {
			return o, true
		}
	}
	return StepOutcome{}, false
}

func (r *FanOutReport) Failed() []StepOutcome {
	var failed []StepOutcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

func (r *FanOutReport) skip(step, reason string) StepOutcome {
	o := StepOutcome{Step: step, Status: StatusSkipped, Reason: reason}
	r.Outcomes = append(r.Outcomes, o)
	return o
}

// attempt runs fn unless configured is false. A returned error or a panic
// fails only this step.
func (r *FanOutReport) attempt(ctx context.Context, step string, configured bool, fn func(context.Context) error) (o StepOutcome) {
	if !configured {
		return r.skip(step, ReasonNotConfigured)
	}

	defer func() {
		if p := recover(); p != nil {
			o = StepOutcome{Step: step, Status: StatusFailed, Err: fmt.Errorf("panic: %v", p)}
		}
		r.Outcomes = append(r.Outcomes, o)
	}()

	err := fn(ctx)
	switch {
	case err == nil:
		return StepOutcome{Step: step, Status: StatusOK}
	case errors.Is(err, integration.ErrNotConfigured):
		return StepOutcome{Step: step, Status: StatusSkipped, Reason: ReasonNotConfigured}
	default:
		return StepOutcome{Step: step, Status: StatusFailed, Err: err}
	}
}

// LogAttrs flattens the report into slog key/value pairs.
func (r *FanOutReport) LogAttrs() []any {
	attrs := []any{"job_id", r.JobID, "kind", r.Kind}
	for _, o := range r.Outcomes {
		value := string(o.Status)
		switch {
		case o.Err != nil:
			value += ": " + o.Err.Error()
		case o.Reason != "":
			value += ": " + o.Reason
		}
		attrs = append(attrs, "step_"+o.Step, value)
	}
	return attrs
}
