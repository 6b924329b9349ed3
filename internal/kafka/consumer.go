package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/georgyshamteev/SOA/internal/domain/models"
	"github.com/georgyshamteev/SOA/internal/lib/logger/sl"
	"github.com/segmentio/kafka-go"
)

const (
	TopicViewEvents    = "view_events"
	TopicLikeEvents    = "like_click_events"
	TopicCommentEvents = "comment_events"

	saveTimeout = 5 * time.Second
)

// topicBindings pins each topic to exactly one event type. Every
// binding gets its own worker and its own consumer group, so topics
// stay independent failure and throughput domains.
var topicBindings = []struct {
	Topic     string
	EventType models.EventType
}{
	{TopicViewEvents, models.EventTypeView},
	{TopicLikeEvents, models.EventTypeLike},
	{TopicCommentEvents, models.EventTypeComment},
}

type EventSaver interface {
	SaveEvent(ctx context.Context, event models.Event) error
}

type Consumers struct {
	workers []*worker
	wg      sync.WaitGroup
	log     *slog.Logger
}

type worker struct {
	r         *kafka.Reader
	eventType models.EventType
	saver     EventSaver
	log       *slog.Logger
}

func NewConsumers(brokers []string, saver EventSaver, log *slog.Logger) *Consumers {
	c := &Consumers{log: log}

	for _, binding := range topicBindings {
		c.workers = append(c.workers, &worker{
			r: kafka.NewReader(kafka.ReaderConfig{
				Brokers:     brokers,
				GroupID:     fmt.Sprintf("statistics-%s-group", binding.Topic),
				Topic:       binding.Topic,
				MinBytes:    1,
				MaxBytes:    10e6,
				StartOffset: kafka.FirstOffset,
			}),
			eventType: binding.EventType,
			saver:     saver,
			log: log.With(
				slog.String("topic", binding.Topic),
				slog.String("event_type", string(binding.EventType)),
			),
		})
	}

	return c
}

// Start runs one worker goroutine per topic. Cancelling ctx asks every
// worker to stop fetching; Stop joins them afterwards.
func (c *Consumers) Start(ctx context.Context) {
	for _, w := range c.workers {
		c.wg.Add(1)

		go func(w *worker) {
			defer c.wg.Done()
			w.run(ctx)
		}(w)
	}

	c.log.Info("kafka consumers started", slog.Int("workers", len(c.workers)))
}

// Stop waits until every worker has finished its in-flight message and
// closes the readers, releasing the consumer group membership.
func (c *Consumers) Stop() {
	c.wg.Wait()

	for _, w := range c.workers {
		if err := w.r.Close(); err != nil {
			c.log.Error("failed to close kafka reader", sl.Err(err))
		}
	}

	c.log.Info("kafka consumers stopped")
}

func (w *worker) run(ctx context.Context) {
	w.log.Info("consumer started")

	for {
		msg, err := w.r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				w.log.Info("consumer stopped")
				return
			}
			w.log.Error("kafka fetch error", sl.Err(err))
			continue
		}

		w.processMessage(msg)

		// the offset advances after the save attempt, success or not:
		// persistence here is fire-and-forget and never retried at the
		// message level. Commit survives shutdown of the fetch context
		// so an in-flight message is not reprocessed after restart.
		if err := w.r.CommitMessages(context.Background(), msg); err != nil {
			w.log.Error("failed to commit offset", sl.Err(err))
		}
	}
}

// processMessage contains every per-message failure: a malformed
// payload, a store error or a panic skips this message only.
func (w *worker) processMessage(msg kafka.Message) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("panic while processing message", slog.Any("panic", r))
		}
	}()

	event, err := parseEvent(msg.Value, w.eventType)
	if err != nil {
		w.log.Error("could not parse message", sl.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.saver.SaveEvent(ctx, event); err != nil {
		w.log.Error("failed to save event", sl.Err(err))
	}
}
