package snapshot

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last state change before a
// snapshot write is committed.
const DefaultDebounce = 2 * time.Second

// Writer debounces snapshot writes for one collection. Every Schedule call
// cancels any pending write and starts the window again, so a burst of edits
// collapses into a single write carrying whatever state exists when the timer
// finally fires.
//
// Writes are serialized by construction: at most one timer is armed, and the
// capture callback runs exactly once per committed write.
type Writer struct {
	store   Store
	key     string
	window  time.Duration
	timeout time.Duration

	// Capture returns the record to persist at fire time, or ok=false when
	// there is nothing to write (e.g. the session was torn down).
	capture func() (Record, bool)

	onWritten func(at time.Time)
	onError   func(err error)

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
	wg     sync.WaitGroup
}

// WriterConfig bundles the Writer dependencies.
type WriterConfig struct {
	Store   Store
	Key     string
	Window  time.Duration // zero means DefaultDebounce
	Timeout time.Duration // per-write deadline, zero means 5s

	Capture   func() (Record, bool)
	OnWritten func(at time.Time)
	OnError   func(err error)
}

// NewWriter constructs a Writer. Capture is required; the callbacks are
// optional.
func NewWriter(cfg WriterConfig) *Writer {
	if cfg.Window <= 0 {
		cfg.Window = DefaultDebounce
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Writer{
		store:     cfg.Store,
		key:       cfg.Key,
		window:    cfg.Window,
		timeout:   cfg.Timeout,
		capture:   cfg.Capture,
		onWritten: cfg.OnWritten,
		onError:   cfg.OnError,
	}
}

// Schedule (re)arms the debounce timer. A pending write that has not fired
// yet is cancelled and replaced.
func (w *Writer) Schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	gen := w.gen
	w.timer = time.AfterFunc(w.window, func() { w.fire(gen) })
}

// Flush cancels any pending timer and writes the current state immediately.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	rec, ok := w.capture()
	if !ok {
		return nil
	}
	if err := w.store.Save(ctx, w.key, rec); err != nil {
		return err
	}
	if w.onWritten != nil {
		w.onWritten(time.Now())
	}
	return nil
}

// Cancel drops any pending write and waits for an in-flight one to finish.
// After Cancel returns, no write scheduled before the call can commit, so a
// caller may delete the stored snapshot without being overtaken by a write
// that was racing the cancellation.
func (w *Writer) Cancel() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	// Invalidate timers that fired but have not committed to writing yet.
	w.gen++
	w.mu.Unlock()
	w.wg.Wait()
}

// Close cancels pending work and waits for an in-flight write to finish.
// The Writer must not be scheduled again after Close.
func (w *Writer) Close() {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Writer) fire(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	rec, ok := w.capture()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.store.Save(ctx, w.key, rec); err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onWritten != nil {
		w.onWritten(time.Now())
	}
}
