// Package kafka forwards domain events to a Kafka topic.
package kafka

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/events"
	"evdemand/pkg/logger"
	"evdemand/pkg/serrors"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	headerEventType  = "event_type"
	headerOccurredAt = "occurred_at"
)

const (
	// batchTimeout bounds how long kafka-go holds a partial batch.
	batchTimeout = 10 * time.Millisecond
	// queueSize is the number of pending Publish calls; beyond it events are
	// dropped.
	queueSize           = 1024
	defaultWriteTimeout = 10 * time.Second
)

// Options configures the producer.
type Options struct {
	Brokers []string
	Topic   string
	// WriteTimeout bounds delivery of one Publish call, metadata lookup and
	// retries included.
	WriteTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes events keyed by postal code, so all events for one area
// land on the same partition in order. Delivery runs on a background
// goroutine; Publish never waits for the broker.
type Writer struct {
	writer  messageWriter
	timeout time.Duration
	// logCtx only carries the logger for delivery failures.
	logCtx context.Context

	mu     sync.RWMutex
	closed bool
	queue  chan []kafkago.Message
	done   chan struct{}
}

var _ events.Publisher = (*Writer)(nil)

// NewWriter starts a producer for opts. Failures are logged with the logger
// of ctx; cancelling ctx does not stop the writer, Close does.
func NewWriter(ctx context.Context, opts Options) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(opts.Brokers...),
		Topic:        opts.Topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
		WriteTimeout: opts.WriteTimeout,
		BatchTimeout: batchTimeout,
	}

	return newWriter(ctx, w, opts.WriteTimeout, queueSize)
}

func newWriter(ctx context.Context, mw messageWriter, timeout time.Duration, size int) *Writer {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	w := &Writer{
		writer:  mw,
		timeout: timeout,
		logCtx:  context.WithoutCancel(ctx),
		queue:   make(chan []kafkago.Message, size),
		done:    make(chan struct{}),
	}
	go w.run()

	return w
}

func (w *Writer) run() {
	defer close(w.done)

	for msgs := range w.queue {
		ctx, cancel := context.WithTimeout(w.logCtx, w.timeout)
		err := w.writer.WriteMessages(ctx, msgs...)
		cancel()
		if err != nil {
			logger.Error(w.logCtx, "could not deliver events to kafka",
				zap.Error(err), zap.Int("count", len(msgs)), zap.String("postal_code", string(msgs[0].Key)))
		}
	}
}

// Publish queues all events as one batch. It fails only when an event cannot
// be encoded, the queue is full or the writer is closed.
func (w *Writer) Publish(_ context.Context, evs ...domain.Event) error {
	if len(evs) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(evs))
	for i, e := range evs {
		msg, err := eventToMessage(e)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return serrors.With(serrors.ErrUnavailable, "kafka writer is closed")
	}

	select {
	case w.queue <- msgs:
		return nil
	default:
		return serrors.With(serrors.ErrUnavailable, "kafka queue is full, dropped %d events", len(msgs))
	}
}

// Handle lets the writer subscribe to an events.Bus.
func (w *Writer) Handle(ctx context.Context, e domain.Event) error {
	return w.Publish(ctx, e)
}

// Close delivers what is still queued and releases the producer. It is safe
// to call more than once.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	<-w.done

	return w.writer.Close()
}

func eventToMessage(e domain.Event) (kafkago.Message, error) {
	data, err := events.Encode(e)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("could not encode %s event: %w", e.EventType(), err)
	}

	return kafkago.Message{
		Key:   []byte(e.AggregateKey()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: headerEventType, Value: []byte(e.EventType())},
			{Key: headerOccurredAt, Value: []byte(e.OccurredAt().UTC().Format(time.RFC3339))},
		},
	}, nil
}
