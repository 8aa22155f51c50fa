package mail

import (
	"context"
	"time"

	"github.com/liv8solar/solar-leads/internal/config"
	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

// Notifier sends the internal team a message for each submission type.
type Notifier struct {
	transport Transport
	to        string
	from      string
	now       func() time.Time
}

// NewNotifier prefers SendGrid when an API key is set and falls back to
// SMTP when a host is set. With neither the notifier is unconfigured.
func NewNotifier(cfg config.MailConfig, timeout time.Duration) *Notifier {
	var transport Transport
	if key := cfg.GetSendGridAPIKey(); key != "" {
		transport = NewSendGridSender(key, timeout)
	} else if host, port, user, pass := cfg.GetSMTP(); host != "" {
		transport = NewSMTPSender(host, port, user, pass)
	}
	return NewNotifierWithTransport(transport, cfg.GetNotifyTo(), cfg.GetNotifyFrom())
}

func NewNotifierWithTransport(transport Transport, to, from string) *Notifier {
	return &Notifier{transport: transport, to: to, from: from, now: time.Now}
}

func (n *Notifier) Configured() bool {
	return n != nil && n.transport != nil
}

func (n *Notifier) NotifyLead(ctx context.Context, lead *entity.Lead) error {
	msg, err := NewLeadMessage(lead, n.now())
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

func (n *Notifier) NotifyCalculation(ctx context.Context, calc *entity.SolarCalculation) error {
	msg, err := SolarCalculationMessage(calc, n.now())
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

func (n *Notifier) NotifyConsultation(ctx context.Context, consultation *entity.Consultation, lead *entity.Lead) error {
	msg, err := ConsultationMessage(consultation, lead, n.now())
	if err != nil {
		return err
	}
	return n.send(ctx, msg)
}

func (n *Notifier) send(ctx context.Context, msg Message) error {
	if !n.Configured() {
		return integration.ErrNotConfigured
	}
	msg.To = n.to
	msg.From = n.from
	return n.transport.Send(ctx, msg)
}
