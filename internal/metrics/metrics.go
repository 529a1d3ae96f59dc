package metrics

import (
	"sync"
	"time"
)

type routeStats struct {
	requests    int
	errors      int
	lastLatency time.Duration
}

type staticStats struct {
	served int
	missed int
}

// Recorder captures HTTP and static-file metrics. In-memory counters are
// always kept; OpenTelemetry instruments are fed when configured.
type Recorder struct {
	mu     sync.Mutex
	routes map[string]*routeStats
	static map[string]*staticStats
	otel   *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		routes: make(map[string]*routeStats),
		static: make(map[string]*staticStats),
		otel:   otel,
	}
}

// RecordHTTPRequest tracks a completed request against its route label.
// Statuses of 500 and above count as errors.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.routes[route]
	if !ok {
		stats = &routeStats{}
		r.routes[route] = stats
	}
	stats.requests++
	stats.lastLatency = duration
	if status >= 500 {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, route, status, duration)
	}
}

// RecordStaticFile tracks a static asset lookup for kind (css, js, assets, view).
func (r *Recorder) RecordStaticFile(kind string, found bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.static[kind]
	if !ok {
		stats = &staticStats{}
		r.static[kind] = stats
	}
	if found {
		stats.served++
	} else {
		stats.missed++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStaticFile(kind, found)
	}
}

// Snapshot is a copy of the stats recorded for one route.
type Snapshot struct {
	Requests    int
	Errors      int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for route.
func (r *Recorder) Snapshot(route string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.routes[route]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Requests:    stats.requests,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// StaticCounts returns how many files of kind were served and missed.
func (r *Recorder) StaticCounts(kind string) (served, missed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.static[kind]; ok {
		return stats.served, stats.missed
	}
	return 0, 0
}
