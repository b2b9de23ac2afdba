package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viscontie/junk-mail-service/internal/obs"
)

// Dispatcher queues messages and delivers them with background workers
// so best-effort pushes never block the request that triggered them.
// Send failures are logged and dropped.
type Dispatcher struct {
	sender Sender

	mu      sync.Mutex
	backlog []Message
	notify  chan struct{}

	shuttingDown atomic.Bool
	enqueued     atomic.Uint64
	sent         atomic.Uint64
	failed       atomic.Uint64

	wg sync.WaitGroup
}

// NewDispatcher wraps sender with an asynchronous delivery queue.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		notify: make(chan struct{}, 1),
	}
}

// Start launches workers delivering queued messages until ctx ends.
func (d *Dispatcher) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 2
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		for {
			m, ok := d.pop()
			if !ok {
				break
			}
			if err := d.sender.Send(ctx, m); err != nil {
				d.failed.Add(1)
				obs.Logger.Warn("push_send_failed", "title", m.Title, "error", err)
				continue
			}
			d.sent.Add(1)
		}
		select {
		case <-ctx.Done():
			return
		case <-d.notify:
		case <-ticker.C:
		}
	}
}

func (d *Dispatcher) pop() (Message, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.backlog) == 0 {
		return Message{}, false
	}
	m := d.backlog[0]
	d.backlog = d.backlog[1:]
	return m, true
}

// Enqueue queues a message for delivery. It reports false once intake
// has closed for shutdown.
func (d *Dispatcher) Enqueue(m Message) bool {
	if d.shuttingDown.Load() {
		return false
	}
	if m.Token == "" {
		return false
	}
	d.enqueued.Add(1)
	d.mu.Lock()
	d.backlog = append(d.backlog, m)
	d.mu.Unlock()
	select {
	case d.notify <- struct{}{}:
	default:
	}
	return true
}

// Send implements Sender by enqueueing, so the Dispatcher can stand
// wherever a synchronous sender is expected.
func (d *Dispatcher) Send(ctx context.Context, m Message) error {
	d.Enqueue(m)
	return nil
}

// BacklogSize returns the number of undelivered messages.
func (d *Dispatcher) BacklogSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.backlog)
}

// Metrics returns delivery counters for observability.
func (d *Dispatcher) Metrics() (enqueued, sent, failed uint64, backlog int) {
	return d.enqueued.Load(), d.sent.Load(), d.failed.Load(), d.BacklogSize()
}

// CloseIntake disallows future enqueues.
func (d *Dispatcher) CloseIntake() { d.shuttingDown.Store(true) }

// DrainUntil waits for the backlog to empty or ctx to end, reporting
// whether it drained.
func (d *Dispatcher) DrainUntil(ctx context.Context) bool {
	t := time.NewTicker(20 * time.Millisecond)
	defer t.Stop()
	for {
		if d.BacklogSize() == 0 {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
		}
	}
}
