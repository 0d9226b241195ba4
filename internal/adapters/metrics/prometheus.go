package metrics

import (
	"context"
	"time"

	"github.com/bnema/cloudwallet-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

type Histograms struct {
	durations *prometheus.HistogramVec
}

var _ ports.MetricsRecorder = (*Histograms)(nil)

func NewHistograms(namespace string, registerer prometheus.Registerer) (*Histograms, error) {
	h := &Histograms{
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "signing_duration_seconds",
			Help:      "Time spent on wallet signing paths",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 300},
		}, []string{"metric"}),
	}
	if err := registerer.Register(h.durations); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Histograms) RecordDuration(_ context.Context, name string, elapsed time.Duration) {
	h.durations.WithLabelValues(name).Observe(elapsed.Seconds())
}

type Multi []ports.MetricsRecorder

func (m Multi) RecordDuration(ctx context.Context, name string, elapsed time.Duration) {
	for _, recorder := range m {
		recorder.RecordDuration(ctx, name, elapsed)
	}
}
