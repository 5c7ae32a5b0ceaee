package gesture

import (
	"sync"
	"time"
)

// DefaultThreshold is the fixed long-press hold duration.
const DefaultThreshold = 500 * time.Millisecond

// LongPress detects a sustained contact: Press arms a timer and the
// callback fires once the threshold elapses without a Release. Release
// before the threshold cancels the pending press with no effect.
type LongPress struct {
	mu        sync.Mutex
	threshold time.Duration
	timer     *time.Timer
	armed     bool
	fire      func()
}

// NewLongPress creates a detector. A non-positive threshold falls back
// to DefaultThreshold.
func NewLongPress(threshold time.Duration, fire func()) *LongPress {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &LongPress{
		threshold: threshold,
		fire:      fire,
	}
}

// Press starts (or restarts) the hold timer.
func (g *LongPress) Press() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
	}
	g.armed = true
	g.timer = time.AfterFunc(g.threshold, g.elapsed)
}

// Release cancels a pending press. Releasing with no press armed is a
// no-op.
func (g *LongPress) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.armed = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// elapsed fires the callback exactly once per armed press.
func (g *LongPress) elapsed() {
	g.mu.Lock()
	if !g.armed {
		g.mu.Unlock()
		return
	}
	g.armed = false
	g.timer = nil
	g.mu.Unlock()

	g.fire()
}
