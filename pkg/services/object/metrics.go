package object

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type MetricCollector struct {
	next ServiceServer
}

const (
	namespace = "cellar_node"
	subsystem = "object"
)

// Request counter metrics.
var (
	getCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "get_req_count",
		Help:      "Number of get request processed",
	})

	putCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "put_req_count",
		Help:      "Number of put request processed",
	})

	deleteCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "delete_req_count",
		Help:      "Number of delete request processed",
	})
)

// Request duration metrics.
var (
	getDuration = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "get_req_duration",
		Help:      "Accumulated get request process duration",
	})

	putDuration = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "put_req_duration",
		Help:      "Accumulated put request process duration",
	})

	deleteDuration = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "delete_req_duration",
		Help:      "Accumulated delete request process duration",
	})
)

// Object payload metrics.
var (
	putPayload = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "put_payload",
		Help:      "Accumulated payload size at object put method",
	})

	getPayload = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "get_payload",
		Help:      "Accumulated payload size at object get method",
	})
)

func registerMetrics() {
	prometheus.MustRegister(getCounter)
	prometheus.MustRegister(putCounter)
	prometheus.MustRegister(deleteCounter)

	prometheus.MustRegister(getDuration)
	prometheus.MustRegister(putDuration)
	prometheus.MustRegister(deleteDuration)

	prometheus.MustRegister(putPayload)
	prometheus.MustRegister(getPayload)
}

// NewMetricCollector wraps the next ServiceServer with request count,
// duration and payload size accounting. Must not be called twice within a
// process: the collectors are registered in the default prometheus registry.
func NewMetricCollector(next ServiceServer) *MetricCollector {
	registerMetrics()

	return &MetricCollector{
		next: next,
	}
}

func (m MetricCollector) Put(ctx context.Context, key string, payload []byte) error {
	t := time.Now()
	defer func() {
		putCounter.Inc()
		putDuration.Add(float64(time.Since(t)))
	}()

	err := m.next.Put(ctx, key, payload)
	if err == nil {
		putPayload.Add(float64(len(payload)))
	}

	return err
}

func (m MetricCollector) Get(ctx context.Context, key string) ([]byte, error) {
	t := time.Now()
	defer func() {
		getCounter.Inc()
		getDuration.Add(float64(time.Since(t)))
	}()

	payload, err := m.next.Get(ctx, key)
	if err == nil {
		getPayload.Add(float64(len(payload)))
	}

	return payload, err
}

func (m MetricCollector) Delete(ctx context.Context, key string) error {
	t := time.Now()
	defer func() {
		deleteCounter.Inc()
		deleteDuration.Add(float64(time.Since(t)))
	}()

	return m.next.Delete(ctx, key)
}
