package profiler

import (
	"io"
	"log"
	"math"
	"os"
	"testing"
	"time"
)

func TestTickReportsRates(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	now := time.Unix(0, 0)
	p := NewProfiler(WithClock(func() time.Time { return now }))

	// 50 ticks over one second, 10 of them drawn
	for i := 0; i < 49; i++ {
		now = now.Add(20 * time.Millisecond)
		if p.Tick(i%5 == 0) {
			t.Fatalf("logged early at tick %d", i)
		}
	}
	now = now.Add(20 * time.Millisecond)
	if !p.Tick(false) {
		t.Fatal("expected stats after one second")
	}

	s := p.Last()
	if math.Abs(s.TickRate-50) > 1e-9 {
		t.Errorf("TickRate = %v, want 50", s.TickRate)
	}
	if math.Abs(s.DrawRate-10) > 1e-9 {
		t.Errorf("DrawRate = %v, want 10", s.DrawRate)
	}
	if math.Abs(s.IdleRatio-0.8) > 1e-9 {
		t.Errorf("IdleRatio = %v, want 0.8", s.IdleRatio)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	if p.updateInterval != time.Second {
		t.Errorf("interval = %v, want 1s", p.updateInterval)
	}
	p = NewProfiler(WithInterval(250 * time.Millisecond))
	if p.updateInterval != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", p.updateInterval)
	}
}
