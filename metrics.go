package rmcodec

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"

	"github.com/rawbytedev/rmcodec/pkg/bytestore"
)

type metrics struct {
	encoded       *prometheus.CounterVec
	decoded       *prometheus.CounterVec
	failures      *prometheus.CounterVec
	storeBytes    prometheus.Gauge
	storeCapacity prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer, namespace string, session ksuid.KSUID) *metrics {
	if namespace == "" {
		namespace = "rmcodec"
	}
	registerer = prometheus.WrapRegistererWith(
		prometheus.Labels{"session": session.String()},
		registerer,
	)

	m := metrics{
		encoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_encoded_total",
			Help:      "Number of top-level records serialized, by kind",
		}, []string{"kind"}),
		decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_decoded_total",
			Help:      "Number of top-level records deserialized, by kind",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Number of failed operations",
		}, []string{"op"}),
		storeBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_bytes",
			Help:      "Bytes written to the store",
		}),
		storeCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_capacity_bytes",
			Help:      "Allocated capacity of the store",
		}),
	}

	registerer.MustRegister(
		m.encoded,
		m.decoded,
		m.failures,
		m.storeBytes,
		m.storeCapacity,
	)

	return &m
}

func (m *metrics) observeStore(s *bytestore.Store) {
	m.storeBytes.Set(float64(s.Len()))
	m.storeCapacity.Set(float64(s.Cap()))
}
