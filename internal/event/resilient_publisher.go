package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// retryEntry is a failed event waiting for its next attempt
type retryEntry struct {
	event Event
	// handlers lists the handler positions still to deliver; nil means all
	handlers  []int
	attempt   int
	nextRetry time.Time
	lastErr   error
}

// ResilientPublisher wraps an event Bus with retry and dead-letter handling.
// A failed publish is queued and retried with exponential backoff by a single
// worker; events that exhaust their retries are written to the dead-letter file.
// When the bus is a Redeliverer only the handlers that failed run again, so a
// handler that already succeeded never sees the event twice.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes the event, queueing it for retry on failure.
// It never blocks on the retry queue.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	if rp.maxRetries <= 0 {
		rp.writeDeadLetter(event, 1, err)
		return
	}

	entry := retryEntry{
		event:     event,
		handlers:  failedHandlers(err, nil),
		attempt:   1,
		nextRetry: time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
		lastErr:   err,
	}

	select {
	case <-rp.shutdown:
		log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "error", err)
		rp.writeDeadLetter(event, 1, err)
		return
	default:
	}

	select {
	case rp.retryQueue <- entry:
		log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type, "error", err)
		rp.writeDeadLetter(event, 1, err)
	}
}

// Publish implements Bus. Delivery errors are handled by the retry queue,
// so it always returns nil.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the wrapped bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			if !rp.waitUntil(entry.nextRetry) {
				rp.finalAttempt(entry)
				rp.drain()
				return
			}
			rp.retry(entry)
		}
	}
}

// waitUntil sleeps until t, returning false if shutdown starts first
func (rp *ResilientPublisher) waitUntil(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-rp.shutdown:
		return false
	}
}

// deliver sends the event to the handlers still pending in entry
func (rp *ResilientPublisher) deliver(entry retryEntry) error {
	if r, ok := rp.bus.(Redeliverer); ok && entry.handlers != nil {
		return r.Redeliver(context.Background(), entry.event, entry.handlers)
	}
	return rp.bus.Publish(context.Background(), entry.event)
}

// failedHandlers returns the handler positions named by err, falling back to
// previous when err does not carry them
func failedHandlers(err error, previous []int) []int {
	var de *DeliveryError
	if errors.As(err, &de) && len(de.Failed) > 0 {
		return de.Failed
	}
	return previous
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	log := logger.FromContext(context.Background())

	err := rp.deliver(entry)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}

	if entry.attempt >= rp.maxRetries {
		log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt+1, "error", err)
		rp.writeDeadLetter(entry.event, entry.attempt+1, err)
		return
	}

	next := entry.attempt + 1
	entry.attempt = next
	entry.handlers = failedHandlers(err, entry.handlers)
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(rp.retryDelay, next))
	entry.lastErr = err

	select {
	case rp.retryQueue <- entry:
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", next-1, "error", err)
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry.event, next, err)
	}
}

// finalAttempt makes one last delivery try without waiting for the backoff
func (rp *ResilientPublisher) finalAttempt(entry retryEntry) {
	err := rp.deliver(entry)
	if err != nil {
		rp.writeDeadLetter(entry.event, entry.attempt+1, err)
	}
}

// drain gives every queued event a final attempt during shutdown
func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(event Event, attempts int, err error) {
	if rp.deadLetter == nil {
		return
	}
	if werr := rp.deadLetter.Write(event, attempts, err); werr != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", werr)
	}
}

// Shutdown stops the retry worker after draining the queue.
// It is safe to call more than once.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.shutdownOnce.Do(func() {
		close(rp.shutdown)
	})

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}

	if rp.deadLetter != nil {
		return rp.deadLetter.Close()
	}
	return nil
}
