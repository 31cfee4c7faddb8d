package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window of loop activity.
type Stats struct {
	TickRate  float64 // loop iterations per second
	DrawRate  float64 // frames drawn per second
	IdleRatio float64 // fraction of ticks that skipped drawing
	HeapMB    float64
	GCCount   uint32
}

// Profiler tracks loop tick and drawn-frame rates alongside memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	drawCount      int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged. Non-positive values keep the 1 second default.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: optional configuration
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per loop iteration with whether the scheduler drew a frame.
// Logs statistics when the update interval has elapsed: tick rate, draw rate, idle ratio,
// heap usage, allocation rate and GC pauses.
//
// Parameters:
//   - drawn: true if this iteration drew a frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(drawn bool) bool {
	p.tickCount++
	if drawn {
		p.drawCount++
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	// PauseNs is a circular buffer of the last 256 GC pauses
	for i := startIdx; i < gcCount; i++ {
		maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
	}

	p.last = Stats{
		TickRate:  float64(p.tickCount) / seconds,
		DrawRate:  float64(p.drawCount) / seconds,
		IdleRatio: 1 - float64(p.drawCount)/float64(p.tickCount),
		HeapMB:    float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:   gcCount,
	}

	log.Printf("[Profiler] Ticks: %.1f/s | Draws: %.1f/s | Idle: %.0f%% | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs)",
		p.last.TickRate, p.last.DrawRate, p.last.IdleRatio*100, p.last.HeapMB,
		float64(allocDelta)/1024/1024/seconds, gcCount, maxPauseUs)

	p.tickCount = 0
	p.drawCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the stats of the most recently logged window.
func (p *Profiler) Last() Stats {
	return p.last
}
