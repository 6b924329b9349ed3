package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/georgyshamteev/SOA/internal/domain/models"
	"github.com/georgyshamteev/SOA/internal/lib/logger/handlers/slogdiscard"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (f *fakeSaver) SaveEvent(_ context.Context, event models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, event)
	return nil
}

func (f *fakeSaver) saved() []models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.Event(nil), f.events...)
}

func newTestWorker(eventType models.EventType, saver EventSaver) *worker {
	return &worker{
		eventType: eventType,
		saver:     saver,
		log:       slogdiscard.NewDiscardLogger(),
	}
}

func TestProcessMessage_SavesEvent(t *testing.T) {
	saver := &fakeSaver{}
	w := newTestWorker(models.EventTypeView, saver)

	w.processMessage(kafka.Message{
		Value: []byte(`{"client_id": "user-1", "post_id": 42, "timestamp": "2025-06-01T10:30:00Z"}`),
	})

	events := saver.saved()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeView, events[0].Type)
	assert.Equal(t, int64(42), events[0].PostID)
	assert.Equal(t, "user-1", events[0].ClientID)
}

func TestProcessMessage_MalformedMessageSkipped(t *testing.T) {
	saver := &fakeSaver{}
	w := newTestWorker(models.EventTypeView, saver)

	w.processMessage(kafka.Message{Value: []byte(`{broken`)})

	assert.Empty(t, saver.saved())
}

func TestProcessMessage_OneBadMessageDoesNotStopTheRest(t *testing.T) {
	saver := &fakeSaver{}
	w := newTestWorker(models.EventTypeLike, saver)

	w.processMessage(kafka.Message{Value: []byte(`{"post_id": "not-a-number"}`)})

	const validMessages = 5
	for i := 0; i < validMessages; i++ {
		w.processMessage(kafka.Message{
			Value: []byte(fmt.Sprintf(`{"client_id": "user-%d", "post_id": %d, "timestamp": "2025-06-01T10:30:00Z"}`, i, i)),
		})
	}

	assert.Len(t, saver.saved(), validMessages)
}

func TestProcessMessage_SaveFailureIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("clickhouse is down")}
	w := newTestWorker(models.EventTypeComment, saver)

	// must not panic; the message is logged and dropped by design
	w.processMessage(kafka.Message{
		Value: []byte(`{"client_id": "user-1", "post_id": 1, "timestamp": "2025-06-01T10:30:00Z"}`),
	})

	assert.Empty(t, saver.saved())
}

func TestProcessMessage_DuplicateDeliveryStoredTwice(t *testing.T) {
	saver := &fakeSaver{}
	w := newTestWorker(models.EventTypeView, saver)

	msg := kafka.Message{
		Value: []byte(`{"client_id": "user-1", "post_id": 42, "timestamp": "2025-06-01T10:30:00Z"}`),
	}

	// at-least-once delivery: a redelivered message produces a second row
	w.processMessage(msg)
	w.processMessage(msg)

	assert.Len(t, saver.saved(), 2)
}

func TestNewConsumers_OneWorkerPerTopic(t *testing.T) {
	c := NewConsumers([]string{"localhost:9092"}, &fakeSaver{}, slogdiscard.NewDiscardLogger())

	require.Len(t, c.workers, 3)

	topics := make(map[string]models.EventType, len(c.workers))
	for _, w := range c.workers {
		topics[w.r.Config().Topic] = w.eventType
	}

	assert.Equal(t, models.EventTypeView, topics[TopicViewEvents])
	assert.Equal(t, models.EventTypeLike, topics[TopicLikeEvents])
	assert.Equal(t, models.EventTypeComment, topics[TopicCommentEvents])

	for _, w := range c.workers {
		assert.Equal(t, fmt.Sprintf("statistics-%s-group", w.r.Config().Topic), w.r.Config().GroupID)
		require.NoError(t, w.r.Close())
	}
}
