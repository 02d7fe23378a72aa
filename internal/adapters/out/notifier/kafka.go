// Package notifier delivers order lifecycle events to Kafka. Delivery is
// best-effort: events are queued in memory and written by a background
// dispatcher, and a full queue or a failed write drops the event rather than
// blocking or failing the transition that produced it.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"warehouse/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of kafka.Writer the dispatcher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaEventPublisher implements ports.EventPublisher on top of a Kafka topic.
// Events for the same order share the order id as message key, so they land
// on one partition in transition order.
type KafkaEventPublisher struct {
	writer      messageWriter
	queue       chan ports.Event
	done        chan struct{}
	wg          sync.WaitGroup
	closeOnce   sync.Once
	logger      *slog.Logger
	published   prometheus.Counter
	dropped     prometheus.Counter
	transitions *prometheus.CounterVec
}

// NewKafkaEventPublisher creates a publisher with a bounded in-memory queue
// and starts its background dispatcher.
func NewKafkaEventPublisher(
	writer messageWriter,
	queueSize int,
	logger *slog.Logger,
	published prometheus.Counter,
	dropped prometheus.Counter,
	transitions *prometheus.CounterVec,
) *KafkaEventPublisher {
	p := &KafkaEventPublisher{
		writer:      writer,
		queue:       make(chan ports.Event, queueSize),
		done:        make(chan struct{}),
		logger:      logger.With("component", "kafka_notifier"),
		published:   published,
		dropped:     dropped,
		transitions: transitions,
	}

	p.wg.Add(1)
	go p.dispatch()

	return p
}

// Publish enqueues the event for background delivery. When the queue is full
// or the publisher is closed, the event is dropped, logged, and counted.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event ports.Event) {
	select {
	case <-p.done:
		p.drop(ctx, event, "publisher closed")
		return
	default:
	}

	select {
	case p.queue <- event:
	default:
		p.drop(ctx, event, "queue full")
	}
}

// Close stops the dispatcher after draining already queued events.
func (p *KafkaEventPublisher) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *KafkaEventPublisher) dispatch() {
	defer p.wg.Done()

	for {
		select {
		case event := <-p.queue:
			p.write(event)
		case <-p.done:
			for {
				select {
				case event := <-p.queue:
					p.write(event)
				default:
					return
				}
			}
		}
	}
}

func (p *KafkaEventPublisher) write(event ports.Event) {
	ctx := context.Background()

	value, err := json.Marshal(event)
	if err != nil {
		p.drop(ctx, event, "marshal failed")
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		p.dropped.Inc()
		p.logger.ErrorContext(ctx, "Failed to write notification event",
			"kind", string(event.Kind), "order_id", event.OrderID, "error", err)
		return
	}

	p.published.Inc()
	p.transitions.WithLabelValues(string(event.Kind)).Inc()
}

func (p *KafkaEventPublisher) drop(ctx context.Context, event ports.Event, reason string) {
	p.dropped.Inc()
	p.logger.WarnContext(ctx, "Dropped notification event",
		"kind", string(event.Kind), "order_id", event.OrderID, "reason", reason)
}

// NewWriter builds a Kafka writer for the notification topic.
func NewWriter(host string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(host),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
}
