package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffiliateIDPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		headers map[string]string
		cookies map[string]string
		want    string
	}{
		{name: "none", url: "/api/leads", want: ""},
		{name: "ref query", url: "/api/leads?ref=aff-1", want: "aff-1"},
		{name: "affiliate query before affiliateId", url: "/api/leads?affiliateId=b&affiliate=a", want: "a"},
		{
			name:    "query beats header",
			url:     "/api/leads?affiliateId=q",
			headers: map[string]string{"X-Affiliate-Id": "h"},
			want:    "q",
		},
		{
			name:    "x header beats plain header",
			url:     "/api/leads",
			headers: map[string]string{"Affiliate-Id": "plain", "X-Affiliate-Id": "x"},
			want:    "x",
		},
		{
			name:    "header beats cookie",
			url:     "/api/leads",
			headers: map[string]string{"Affiliate-Id": "h"},
			cookies: map[string]string{"affiliateId": "c"},
			want:    "h",
		},
		{
			name:    "affiliateId cookie before ref cookie",
			url:     "/api/leads",
			cookies: map[string]string{"ref": "r", "affiliateId": "c"},
			want:    "c",
		},
		{name: "empty query ignored", url: "/api/leads?ref=", cookies: map[string]string{"ref": "r"}, want: "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, tt.url, nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			for k, v := range tt.cookies {
				r.AddCookie(&http.Cookie{Name: k, Value: v})
			}
			assert.Equal(t, tt.want, AffiliateID(r))
		})
	}
}
