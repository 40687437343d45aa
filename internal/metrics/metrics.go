package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RelayerMetrics holds the counters the relay service reports.
type RelayerMetrics struct {
	Registry                   *prometheus.Registry
	ValidActivationRequests    prometheus.Counter
	RejectedActivationRequests prometheus.Counter
	ActivationsRelayed         prometheus.Counter
	ActivationsConfirmed       prometheus.Counter
	ActivationsFailed          prometheus.Counter
	UnexpectedErrors           prometheus.Counter
}

func NewRelayerMetrics() *RelayerMetrics {
	registry := prometheus.NewRegistry()
	registerer := promauto.With(registry)

	metrics := &RelayerMetrics{
		Registry: registry,
		ValidActivationRequests: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_valid_activation_requests",
			Help: "Total number of activation requests that passed verification",
		}),
		RejectedActivationRequests: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_rejected_activation_requests",
			Help: "Total number of activation requests rejected during verification",
		}),
		ActivationsRelayed: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_activations_relayed",
			Help: "Total number of activation transactions sent on-chain",
		}),
		ActivationsConfirmed: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_activations_confirmed",
			Help: "Total number of activation transactions confirmed on-chain",
		}),
		ActivationsFailed: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_activations_failed",
			Help: "Total number of activation transactions that reverted or were lost",
		}),
		UnexpectedErrors: registerer.NewCounter(prometheus.CounterOpts{
			Name: "mondo_unexpected_errors",
			Help: "Total number of unexpected internal errors",
		}),
	}

	return metrics
}
