package entity

type NotificationKind string

const (
	KindLeadSubmission        NotificationKind = "lead_submission"
	KindSolarCalculation      NotificationKind = "solar_calculation"
	KindConsultationScheduled NotificationKind = "consultation_scheduled"
)

// NotificationJob carries one best-effort fan-out, either run inline or
// handed to the queue worker. Lead is nil for calculations not tied to a
// known lead.
type NotificationJob struct {
	ID           string            `json:"id"`
	Kind         NotificationKind  `json:"kind"`
	AffiliateID  string            `json:"affiliateId,omitempty"`
	Lead         *Lead             `json:"lead,omitempty"`
	Calculation  *SolarCalculation `json:"calculation,omitempty"`
	Consultation *Consultation     `json:"consultation,omitempty"`
}
