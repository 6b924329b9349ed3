package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/georgyshamteev/SOA/internal/domain/models"
)

// ErrBadPayload marks a malformed inbound message. Such messages are
// logged and skipped, the worker keeps consuming.
var ErrBadPayload = errors.New("bad event payload")

// python-style isoformat without a zone, as the producers emit it
const timestampLayoutNoZone = "2006-01-02T15:04:05.999999"

type envelope struct {
	ClientID  string    `json:"client_id"`
	PostID    flexInt64 `json:"post_id"`
	CommentID *string   `json:"comment_id"`
	Timestamp string    `json:"timestamp"`
}

// flexInt64 accepts both a JSON number and a quoted number, producers
// are not consistent about how they serialize post ids.
type flexInt64 int64

func (n *flexInt64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id %s: %w", string(data), err)
	}

	*n = flexInt64(v)

	return nil
}

func parseEvent(data []byte, eventType models.EventType) (models.Event, error) {
	var env envelope

	if err := json.Unmarshal(data, &env); err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return models.Event{
		Type:      eventType,
		ClientID:  env.ClientID,
		PostID:    int64(env.PostID),
		CommentID: env.CommentID,
		Timestamp: parseTimestamp(env.Timestamp),
	}, nil
}

// parseTimestamp falls back to ingestion time when the envelope carries
// an unparsable timestamp, the event itself is never rejected for it.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, timestampLayoutNoZone} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}

	return time.Now().UTC()
}
