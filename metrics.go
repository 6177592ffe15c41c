package mensafeed

import "github.com/prometheus/client_golang/prometheus"

const prometheusLabelCategory = "category"

type metrics struct {
	fetchDurations  prometheus.Summary
	mealCounter     *prometheus.CounterVec
	dateFallbacks   prometheus.Counter
	daysSkipped     prometheus.Counter
	specialFailures prometheus.Counter
}

var mtc = setupMetrics()

func setupMetrics() metrics {
	m := metrics{
		fetchDurations: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "mensafeed_fetch_duration_seconds",
			Help:       "menu page fetch duration including body streaming",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		mealCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mensafeed_meals_total",
			Help: "meals emitted to the feed builder",
		}, []string{prometheusLabelCategory}),
		dateFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mensafeed_date_fallback_total",
			Help: "runs that fell back to the current system week",
		}),
		daysSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mensafeed_days_skipped_total",
			Help: "weekdays skipped because no menu was found",
		}),
		specialFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mensafeed_special_lookup_failures_total",
			Help: "runs where the weekly special could not be located",
		}),
	}
	prometheus.MustRegister(
		m.fetchDurations,
		m.mealCounter,
		m.dateFallbacks,
		m.daysSkipped,
		m.specialFailures,
	)
	return m
}
