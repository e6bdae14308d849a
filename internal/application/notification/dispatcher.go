// Package notification decouples ticket mutations from the delivery of
// admin notifications. Use cases publish events after their transaction
// commits; a background worker fans them out to the registered handlers.
// Delivery is best-effort: failures are logged and never reach the caller.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aster/internal/domain/ticket"
	"aster/internal/shared/logger"
)

const deliveryTimeout = 15 * time.Second

// Handler receives ticket lifecycle events.
type Handler interface {
	TicketOpened(ctx context.Context, ev ticket.TicketOpenedEvent)
	TicketReplied(ctx context.Context, ev ticket.TicketRepliedEvent)
}

// Dispatcher is an in-process, buffered event dispatcher. Publish never
// blocks the publishing request; when the buffer is full the event is
// dropped with an error the caller is expected to log and ignore.
type Dispatcher struct {
	handlers []Handler
	eventCh  chan any
	stopCh   chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	logger   logger.Interface
}

func NewDispatcher(bufferSize int, log logger.Interface) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &Dispatcher{
		eventCh: make(chan any, bufferSize),
		stopCh:  make(chan struct{}),
		logger:  log,
	}
}

// Register adds a handler. Must be called before Start.
func (d *Dispatcher) Register(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Publish enqueues an event for asynchronous delivery.
func (d *Dispatcher) Publish(event any) error {
	d.mu.Lock()
	running := d.running
	d.mu.Unlock()

	if !running {
		return fmt.Errorf("notification dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("notification event channel is full")
	}
}

func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("notification dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop drains no further events; in-flight deliveries finish on their own
// goroutines.
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			return
		case event := <-d.eventCh:
			d.dispatch(event)
		}
	}
}

func (d *Dispatcher) dispatch(event any) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	d.mu.Lock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.Unlock()

	switch ev := event.(type) {
	case ticket.TicketOpenedEvent:
		for _, h := range handlers {
			h.TicketOpened(ctx, ev)
		}
	case ticket.TicketRepliedEvent:
		for _, h := range handlers {
			h.TicketReplied(ctx, ev)
		}
	default:
		d.logger.Warnw("unknown notification event type", "event", fmt.Sprintf("%T", event))
	}
}
