package googlesolar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

func TestInsightsForAddressFallsBackToMediumQuality(t *testing.T) {
	var qualities []string
	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1 Main St", r.URL.Query().Get("address"))
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"1 Main St, AZ","place_id":"p1","geometry":{"location":{"lat":33.1,"lng":-111.9}}}]}`))
	})
	mux.HandleFunc("/insights", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("requiredQuality")
		qualities = append(qualities, q)
		assert.Equal(t, "33.100000", r.URL.Query().Get("location.latitude"))
		if q == "HIGH" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"imageryQuality":"MEDIUM","solarPotential":{"maxArrayPanelsCount":12,"panelCapacityWatts":400,"solarPanelConfigs":[{"panelsCount":12,"yearlyEnergyDcKwh":6000}]}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient("k", time.Second)
	c.GeocodeURL = srv.URL + "/geocode"
	c.InsightsURL = srv.URL + "/insights"

	s, err := c.InsightsForAddress(context.Background(), "1 Main St")
	require.NoError(t, err)

	assert.Equal(t, []string{"HIGH", "MEDIUM"}, qualities)
	assert.Equal(t, "MEDIUM", s.ImageryQuality)
	assert.Equal(t, "1 Main St, AZ", s.Address)
	assert.Equal(t, 4.8, s.RecommendedSystemSizeKw)
}

func TestGeocodeRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", time.Second)
	c.GeocodeURL = srv.URL

	_, err := c.Geocode(context.Background(), "nowhere")
	assert.ErrorContains(t, err, "ZERO_RESULTS")
}

func TestUnconfigured(t *testing.T) {
	_, err := NewClient("", time.Second).InsightsForAddress(context.Background(), "x")
	assert.ErrorIs(t, err, integration.ErrNotConfigured)
}
