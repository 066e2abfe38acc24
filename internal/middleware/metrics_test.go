package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/orders/{order_id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/ws", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSwitchingProtocols)
	})
	r.Get(metricsRoute, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(target string) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
	requests := func(route, status string) float64 {
		return counterValue(t, httpRequestsTotal.With(prometheus.Labels{"method": http.MethodGet, "route": route, "status": status}))
	}

	orders := requests("/orders/{order_id}", "200")
	unmatched := requests("unmatched", "404")
	scrapes := requests(metricsRoute, "200")
	sockets := requests("/ws", "101")
	upgrades := counterValue(t, wsUpgrades)

	serve("/orders/ORD-000001")
	serve("/orders/ORD-000002")
	serve("/nope/1")
	serve("/nope/2")
	serve("/ws")
	serve(metricsRoute)

	assert.Equal(t, orders+2, requests("/orders/{order_id}", "200"), "ids collapse into the route pattern")
	assert.Equal(t, unmatched+2, requests("unmatched", "404"))
	assert.Equal(t, scrapes, requests(metricsRoute, "200"))
	assert.Equal(t, sockets, requests("/ws", "101"))
	assert.Equal(t, upgrades+1, counterValue(t, wsUpgrades))
}
