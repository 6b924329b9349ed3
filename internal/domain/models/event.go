package models

import (
	"fmt"
	"time"
)

// EventType is the category of a user activity event.
type EventType string

const (
	EventTypeView    EventType = "view"
	EventTypeLike    EventType = "like"
	EventTypeComment EventType = "comment"
)

// ParseEventType maps a metric selector to an event type.
// Unknown selectors are rejected, never defaulted.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventTypeView, EventTypeLike, EventTypeComment:
		return EventType(s), nil
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Event is one immutable record of a user action on a post.
// Events are append-only: duplicates from the broker are stored as
// duplicate rows, nothing is ever updated or deleted.
type Event struct {
	Type      EventType
	ClientID  string
	PostID    int64
	CommentID *string
	Timestamp time.Time
}

// PostStats holds per-post counters for all three event types.
type PostStats struct {
	Views    uint64
	Likes    uint64
	Comments uint64
}

// DayCount is one point of a per-day time series.
type DayCount struct {
	Date  time.Time
	Count uint64
}

// TopPost is one entry of a top-posts ranking.
type TopPost struct {
	PostID int64
	Count  uint64
}

// TopUser is one entry of a top-users ranking.
type TopUser struct {
	ClientID string
	Count    uint64
}
