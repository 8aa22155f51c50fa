package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type HandleOpenSolarEventUseCase struct {
	Automation AutomationWebhook
	Logger     *logger.Logger
}

func NewHandleOpenSolarEventUseCase(automation AutomationWebhook, log *logger.Logger) *HandleOpenSolarEventUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &HandleOpenSolarEventUseCase{Automation: automation, Logger: log}
}

// Execute forwards project updates to the automation webhook. Other events
// are accepted and ignored. The forward is best-effort.
func (uc *HandleOpenSolarEventUseCase) Execute(ctx context.Context, event OpenSolarEvent) {
	log := uc.Logger.WithContext(ctx)
	log.Info("opensolar webhook received", "model_name", event.ModelName, "event_type", event.EventType)

	if event.ModelName != "project" || event.EventType != "UPDATE" {
		return
	}
	projectID := modelKey(event.ModelPK)
	if projectID == "" || !configured(uc.Automation) {
		return
	}

	if err := uc.Automation.SendProjectUpdate(ctx, projectID); err != nil {
		log.IntegrationError(StepAutomation, "forward project update", err)
	}
}

// modelKey renders a primary key that may arrive as a number or a string.
func modelKey(pk any) string {
	switch v := pk.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
