package metrics

import (
	"sync"
	"time"
)

type loadStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about resource loads and mirrors them to OpenTelemetry when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*loadStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*loadStats),
		otel:  otel,
	}
}

// RecordResourceLoad tracks a data service read of a resource document.
func (r *Recorder) RecordResourceLoad(resource string, duration time.Duration, err error) {
	r.recordLoad(SourceService, resource, duration, err)
}

// RecordClientFetch tracks a client retrieval of a resource over HTTP.
func (r *Recorder) RecordClientFetch(resource string, duration time.Duration, err error) {
	r.recordLoad(SourceClient, resource, duration, err)
}

func (r *Recorder) recordLoad(source, resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(statsKey(source, resource))
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLoad(source, resource, duration, err)
	}
}

// Snapshot is a copy of the stats for one source/resource pair.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// ResourceLoads returns the data service stats for a resource.
func (r *Recorder) ResourceLoads(resource string) Snapshot {
	return r.snapshot(SourceService, resource)
}

// ClientFetches returns the client stats for a resource.
func (r *Recorder) ClientFetches(resource string) Snapshot {
	return r.snapshot(SourceClient, resource)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(key string) *loadStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &loadStats{}
		r.stats[key] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source, resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[statsKey(source, resource)]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

func statsKey(source, resource string) string {
	return source + "/" + resource
}
