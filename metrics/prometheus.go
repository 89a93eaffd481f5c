// Package metrics exports undo history events to Prometheus.
package metrics

import (
	"errors"
	"fmt"

	"github.com/enetx/undo"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "undo"

// PrometheusObserver is an undo.Observer that maintains Prometheus collectors
// for history activity.
type PrometheusObserver struct {
	events   *prometheus.CounterVec
	failures *prometheus.CounterVec
	dropped  *prometheus.CounterVec
	size     prometheus.Gauge
	position prometheus.Gauge
}

// NewPrometheusObserver registers the history collectors with reg (the default
// registerer when nil). Collectors that are already registered under the same
// names are reused, so several systems may share one namespace.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &PrometheusObserver{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "History events by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoke_failures_total",
			Help:      "Invocations whose command failed, by command tag.",
		}, []string{"tag"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_mementos_total",
			Help:      "Mementos removed from the history, by reason.",
		}, []string{"reason"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_size",
			Help:      "Number of mementos currently stored.",
		}),
		position: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_position",
			Help:      "Current history cursor.",
		}),
	}

	var err error

	if o.events, err = register(reg, o.events); err != nil {
		return nil, err
	}

	if o.failures, err = register(reg, o.failures); err != nil {
		return nil, err
	}

	if o.dropped, err = register(reg, o.dropped); err != nil {
		return nil, err
	}

	if o.size, err = register(reg, o.size); err != nil {
		return nil, err
	}

	if o.position, err = register(reg, o.position); err != nil {
		return nil, err
	}

	return o, nil
}

// register registers c, returning the existing collector if an identical one
// was registered before.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("register undo metric: %w", err)
}

// Observe records e.
func (o *PrometheusObserver) Observe(e undo.Event) {
	if o == nil {
		return
	}

	o.events.WithLabelValues(e.Kind.String()).Inc()

	switch e.Kind {
	case undo.EventInvoke:
		if e.Err != nil {
			o.failures.WithLabelValues(string(e.Tag)).Inc()
		}
	case undo.EventTruncate, undo.EventEvict, undo.EventErase, undo.EventClear:
		o.dropped.WithLabelValues(e.Kind.String()).Add(float64(e.Count))
	}

	o.size.Set(float64(e.Size))
	o.position.Set(float64(e.Position))
}

var _ undo.Observer = (*PrometheusObserver)(nil)
