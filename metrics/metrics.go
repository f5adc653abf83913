// Package metrics exports store activity as Prometheus collectors. Observer
// translates store observability events into counters and gauges, so any
// store wired to it is scrapeable without touching the core dispatch path.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/statekit/flow/observability"
	"github.com/statekit/flow/store"
)

// Observer implements observability.Observer over Prometheus collectors.
type Observer struct {
	dispatches    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	journalErrors *prometheus.CounterVec
	subscribers   *prometheus.GaugeVec
}

// NewObserver creates an Observer with its collectors registered on reg.
// A nil reg falls back to the default registerer.
func NewObserver(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Observer{
		dispatches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flow_store_dispatches_total",
			Help: "Actions dispatched, by store and action.",
		}, []string{"store", "action"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flow_store_notifications_total",
			Help: "Subscriber notifications delivered, by store.",
		}, []string{"store"}),
		journalErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "flow_store_journal_errors_total",
			Help: "Journal append failures absorbed by dispatch, by store.",
		}, []string{"store"}),
		subscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "flow_store_subscribers",
			Help: "Currently subscribed observers, by store.",
		}, []string{"store"}),
	}
}

func (o *Observer) OnEvent(_ context.Context, event observability.Event) {
	name, _ := event.Data["store"].(string)
	if name == "" {
		return
	}

	switch event.Type {
	case store.EventDispatch:
		action, _ := event.Data["action"].(string)
		o.dispatches.WithLabelValues(name, action).Inc()
		if delivered, ok := event.Data["subscribers"].(int); ok {
			o.notifications.WithLabelValues(name).Add(float64(delivered))
		}
	case store.EventSubscribe, store.EventUnsubscribe:
		if count, ok := event.Data["subscribers"].(int); ok {
			o.subscribers.WithLabelValues(name).Set(float64(count))
		}
	case store.EventJournalError:
		o.journalErrors.WithLabelValues(name).Inc()
	}
}
