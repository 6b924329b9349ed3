package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/georgyshamteev/SOA/internal/domain/models"
	"github.com/georgyshamteev/SOA/internal/lib/logger/sl"
)

type Statistics struct {
	log      *slog.Logger
	saver    EventSaver
	provider StatsProvider
}

type EventSaver interface {
	SaveEvent(ctx context.Context, event models.Event) error
}

type StatsProvider interface {
	CountEvents(ctx context.Context, eventType models.EventType, postID int64) (uint64, error)
	Dynamics(ctx context.Context, eventType models.EventType, postID int64) ([]models.DayCount, error)
	TopPosts(ctx context.Context, eventType models.EventType) ([]models.TopPost, error)
	TopUsers(ctx context.Context, eventType models.EventType) ([]models.TopUser, error)
}

var ErrUnknownMetric = errors.New("unknown metric")

// New returns a new instance of the Statistics service
func New(
	log *slog.Logger,
	saver EventSaver,
	provider StatsProvider,
) *Statistics {
	return &Statistics{
		log:      log,
		saver:    saver,
		provider: provider,
	}
}

// SaveEvent appends one activity event to the store. Duplicate events
// are stored as-is: the pipeline does not deduplicate redeliveries.
func (s *Statistics) SaveEvent(ctx context.Context, event models.Event) error {
	const op = "statistics.SaveEvent"

	if err := s.saver.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("event saved",
		slog.String("event_type", string(event.Type)),
		slog.Int64("post_id", event.PostID),
		slog.String("client_id", event.ClientID),
	)

	return nil
}

// PostStats counts views, likes and comments for one post. The three
// counters are independent scans over the same store state.
func (s *Statistics) PostStats(ctx context.Context, postID int64) (models.PostStats, error) {
	const op = "statistics.PostStats"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("post_id", postID),
	)

	views, err := s.provider.CountEvents(ctx, models.EventTypeView, postID)
	if err != nil {
		log.Error("failed to count views", sl.Err(err))
		return models.PostStats{}, fmt.Errorf("%s: %w", op, err)
	}

	likes, err := s.provider.CountEvents(ctx, models.EventTypeLike, postID)
	if err != nil {
		log.Error("failed to count likes", sl.Err(err))
		return models.PostStats{}, fmt.Errorf("%s: %w", op, err)
	}

	comments, err := s.provider.CountEvents(ctx, models.EventTypeComment, postID)
	if err != nil {
		log.Error("failed to count comments", sl.Err(err))
		return models.PostStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.PostStats{
		Views:    views,
		Likes:    likes,
		Comments: comments,
	}, nil
}

// Dynamics returns the per-day time series of one event type for a post.
func (s *Statistics) Dynamics(ctx context.Context, eventType models.EventType, postID int64) ([]models.DayCount, error) {
	const op = "statistics.Dynamics"

	data, err := s.provider.Dynamics(ctx, eventType, postID)
	if err != nil {
		s.log.Error("failed to get dynamics",
			slog.String("op", op),
			slog.String("event_type", string(eventType)),
			slog.Int64("post_id", postID),
			sl.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// TopPosts returns up to ten posts ranked by the given metric.
// An unknown metric is rejected before any store access.
func (s *Statistics) TopPosts(ctx context.Context, metric string) ([]models.TopPost, error) {
	const op = "statistics.TopPosts"

	eventType, err := models.ParseEventType(metric)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownMetric)
	}

	posts, err := s.provider.TopPosts(ctx, eventType)
	if err != nil {
		s.log.Error("failed to get top posts",
			slog.String("op", op),
			slog.String("metric", metric),
			sl.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// TopUsers returns up to ten users ranked by the given metric.
func (s *Statistics) TopUsers(ctx context.Context, metric string) ([]models.TopUser, error) {
	const op = "statistics.TopUsers"

	eventType, err := models.ParseEventType(metric)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownMetric)
	}

	users, err := s.provider.TopUsers(ctx, eventType)
	if err != nil {
		s.log.Error("failed to get top users",
			slog.String("op", op),
			slog.String("metric", metric),
			sl.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
