package handlers

import "net/http"

var (
	affiliateQueryKeys  = []string{"ref", "affiliate", "affiliateId"}
	affiliateHeaderKeys = []string{"X-Affiliate-Id", "Affiliate-Id"}
	affiliateCookieKeys = []string{"affiliateId", "ref"}
)

// AffiliateID returns the referring affiliate for r. Query parameters win
// over headers, and headers over cookies.
func AffiliateID(r *http.Request) string {
	q := r.URL.Query()
	for _, k := range affiliateQueryKeys {
		if v := q.Get(k); v != "" {
			return v
		}
	}
	for _, k := range affiliateHeaderKeys {
		if v := r.Header.Get(k); v != "" {
			return v
		}
	}
	for _, k := range affiliateCookieKeys {
		if c, err := r.Cookie(k); err == nil && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
