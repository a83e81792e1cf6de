package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	accountsOpened     *prometheus.CounterVec
	depositsTotal      *prometheus.CounterVec
	withdrawalsTotal   *prometheus.CounterVec
	periodicUpdateRuns prometheus.Counter
	accountsAdjusted   prometheus.Counter
	registeredAccounts prometheus.Gauge
}

// NewPrometheusMetrics registers the simulator's collectors on the default
// registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors on the given registerer.
// Tests pass a fresh registry to avoid duplicate registration.
func NewPrometheusMetricsWith(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		accountsOpened: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_accounts_opened_total",
				Help: "Total number of accounts opened, by account type",
			},
			[]string{"account_type"},
		),
		depositsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_deposits_total",
				Help: "Total number of deposit operations, by outcome",
			},
			[]string{"status"},
		),
		withdrawalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_withdrawals_total",
				Help: "Total number of withdrawal operations, by outcome",
			},
			[]string{"status"},
		),
		periodicUpdateRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_periodic_update_runs_total",
				Help: "Total number of periodic update runs",
			},
		),
		accountsAdjusted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_periodic_adjustments_total",
				Help: "Total number of per-account periodic adjustments applied",
			},
		),
		registeredAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_registered_accounts",
				Help: "Current number of accounts in the registry",
			},
		),
	}
}

func (pm *PrometheusMetrics) RecordAccountOpened(accountType string) {
	pm.accountsOpened.WithLabelValues(accountType).Inc()
}

func (pm *PrometheusMetrics) RecordDeposit(status string) {
	pm.depositsTotal.WithLabelValues(status).Inc()
}

func (pm *PrometheusMetrics) RecordWithdrawal(status string) {
	pm.withdrawalsTotal.WithLabelValues(status).Inc()
}

func (pm *PrometheusMetrics) RecordPeriodicUpdateRun(accountsUpdated int) {
	pm.periodicUpdateRuns.Inc()
	pm.accountsAdjusted.Add(float64(accountsUpdated))
}

func (pm *PrometheusMetrics) SetRegisteredAccounts(count int) {
	pm.registeredAccounts.Set(float64(count))
}
