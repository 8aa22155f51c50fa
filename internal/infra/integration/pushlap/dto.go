package pushlap

type ReferralInput struct {
	AffiliateID            string `json:"affiliateId,omitempty"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	ReferredUserExternalID string `json:"referredUserExternalId,omitempty"`
	Plan                   string `json:"plan"`
	Status                 string `json:"status"`
}

type SaleInput struct {
	ReferralID        string  `json:"referralId"` // referral id or the referred user's email
	ExternalID        string  `json:"externalId,omitempty"`
	ExternalInvoiceID string  `json:"externalInvoiceId,omitempty"`
	TotalEarned       float64 `json:"totalEarned"`
	CommissionRate    float64 `json:"commissionRate"`
}

// Result is whatever Push Lap echoes back; only the id is read.
type Result struct {
	ID any `json:"id,omitempty"`
}
