// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bayroumeter"

// Metrics holds the counters recorded by the registries.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	UsersRegistered prometheus.Counter
	VotesCast       *prometheus.CounterVec
	Rejections      *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the counters on reg, which also backs Handler.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of users registered",
		}),
		VotesCast: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_cast_total",
				Help:      "Total number of votes recorded, by choice",
			},
			[]string{"choice"},
		),
		Rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Requests refused by a registry, by operation and error kind",
			},
			[]string{"operation", "kind"},
		),
		gatherer: reg,
	}
}

func (m *Metrics) UserRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

func (m *Metrics) VoteCast(choice string) {
	if m == nil {
		return
	}
	m.VotesCast.WithLabelValues(choice).Inc()
}

func (m *Metrics) Rejected(operation, kind string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(operation, kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
