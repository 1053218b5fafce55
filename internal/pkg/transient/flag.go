package transient

import (
	"sync"
	"time"
)

// Flag is a boolean that clears itself a fixed window after the last Raise.
// A single timer slot backs each flag: re-raising restarts the visible
// window rather than stacking resets.
type Flag struct {
	mu     sync.Mutex
	active bool
	window time.Duration
	timer  *time.Timer
}

func NewFlag(window time.Duration) *Flag {
	return &Flag{window: window}
}

func (f *Flag) Raise() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.window, f.clear)
}

func (f *Flag) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Stop cancels any pending reset. Used on shutdown.
func (f *Flag) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Flag) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = false
	f.timer = nil
}
