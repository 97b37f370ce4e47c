package draft

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid successive writes into one. Each Trigger call
// stores the latest payload and restarts the delay timer; the flush function
// runs once with the final payload after the burst goes quiet. The caller owns
// the policy; the store itself never delays writes.
type Debouncer struct {
	delay time.Duration
	flush func(key, payload string)

	mu      sync.Mutex
	pending map[string]*time.Timer
	latest  map[string]string
}

// NewDebouncer creates a debouncer that calls flush after delay of quiet time
// per key.
func NewDebouncer(delay time.Duration, flush func(key, payload string)) *Debouncer {
	return &Debouncer{
		delay:   delay,
		flush:   flush,
		pending: make(map[string]*time.Timer),
		latest:  make(map[string]string),
	}
}

// Trigger schedules a flush of payload under key, replacing any pending one.
func (d *Debouncer) Trigger(key, payload string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest[key] = payload
	if timer, ok := d.pending[key]; ok {
		timer.Reset(d.delay)
		return
	}
	d.pending[key] = time.AfterFunc(d.delay, func() {
		d.fire(key)
	})
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	payload, ok := d.latest[key]
	delete(d.latest, key)
	delete(d.pending, key)
	d.mu.Unlock()

	if ok {
		d.flush(key, payload)
	}
}

// Flush runs every pending write immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	keys := make([]string, 0, len(d.pending))
	for key, timer := range d.pending {
		timer.Stop()
		keys = append(keys, key)
	}
	d.mu.Unlock()

	for _, key := range keys {
		d.fire(key)
	}
}
