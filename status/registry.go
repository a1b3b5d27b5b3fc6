package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the frame loop
const (
	MetricFrames             = "frames"
	MetricShots              = "shots"
	MetricProjectilesActive  = "projectiles.active"
	MetricProjectilesRemoved = "projectiles.removed"
	MetricTerrainEroded      = "terrain.eroded"
	MetricFuelBurned         = "fuel.burned"
	MetricFPS                = "fps"
)

// PlayerPrefix returns the key prefix for a zero-based player index, e.g. "p1."
func PlayerPrefix(player int) string {
	return "p" + strconv.Itoa(player+1) + "."
}

// PlayerKey scopes metric to one player, e.g. PlayerKey(0, MetricShots) is "p1.shots"
func PlayerKey(player int, metric string) string {
	return PlayerPrefix(player) + metric
}

// Registry is the central metrics facade
// The loop caches pointers at construction and writes atomics each frame;
// readers (logs, summaries) may run on any goroutine
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric value into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	return r.collect("")
}

// PlayerSnapshot copies one player's metrics with the player prefix stripped
func (r *Registry) PlayerSnapshot(player int) map[string]any {
	prefix := PlayerPrefix(player)
	out := r.collect(prefix)
	trimmed := make(map[string]any, len(out))
	for k, v := range out {
		trimmed[strings.TrimPrefix(k, prefix)] = v
	}
	return trimmed
}

func (r *Registry) collect(prefix string) map[string]any {
	out := make(map[string]any)
	r.Ints.Range(prefix, func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	r.Floats.Range(prefix, func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}
