package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the crafting collectors on a private registry, so several
// engines (or tests) in one process never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	EventsPublished   *prometheus.CounterVec
	MatchChanges      *prometheus.CounterVec
	CraftsStarted     *prometheus.CounterVec
	CraftsCompleted   *prometheus.CounterVec
	CraftsCancelled   *prometheus.CounterVec
	RecipesDiscovered prometheus.Gauge
	CraftDuration     prometheus.Histogram
}

// New registers every crafting collector on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameEventsPublished,
				Help:      HelpTextEventsPublished,
			},
			[]string{LabelType},
		),

		MatchChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameMatchChanges,
				Help:      HelpTextMatchChanges,
			},
			[]string{LabelMatched},
		),

		CraftsStarted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameCraftsStarted,
				Help:      HelpTextCraftsStarted,
			},
			[]string{LabelRecipe},
		),

		CraftsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameCraftsCompleted,
				Help:      HelpTextCraftsCompleted,
			},
			[]string{LabelRecipe, LabelCategory},
		),

		CraftsCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameCraftsCancelled,
				Help:      HelpTextCraftsCancelled,
			},
			[]string{LabelReason},
		),

		RecipesDiscovered: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameRecipesDiscovered,
				Help:      HelpTextRecipesDiscovered,
			},
		),

		CraftDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      MetricNameCraftDuration,
				Help:      HelpTextCraftDuration,
				Buckets:   CraftDurationBuckets,
			},
		),
	}
}

// Sample is one metric family reduced to a single number: the sum over all
// series for counters and gauges, the observation count for histograms
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers the registry into name-sorted samples
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(families))
	for _, mf := range families {
		var total float64
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
			total += metric.GetGauge().GetValue()
			total += float64(metric.GetHistogram().GetSampleCount())
		}
		samples = append(samples, Sample{Name: mf.GetName(), Value: total})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}
