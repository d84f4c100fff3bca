package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/darulriyan/aplikasi-dashboard/internal/table"
)

var (
	// viewRenders counts pipeline runs by view
	viewRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_view_renders_total",
		Help: "Total listing pipeline runs by view",
	}, []string{"view"})

	// viewMatches tracks how many records survive the filter stage
	viewMatches = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "console_view_matches",
		Help:    "Filtered record count per listing render",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
	}, []string{"view"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "console_login_attempts_total",
		Help: "Login attempts by result",
	}, []string{"result"})
)

func observe[R any](view string, res table.Result[R]) table.Result[R] {
	viewRenders.WithLabelValues(view).Inc()
	viewMatches.WithLabelValues(view).Observe(float64(res.Page.Total))
	return res
}
