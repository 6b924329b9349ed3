package clickhouse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/georgyshamteev/SOA/internal/config"
	"github.com/georgyshamteev/SOA/internal/domain/models"
	"github.com/georgyshamteev/SOA/internal/lib/logger/sl"
)

const (
	connectAttempts = 30
	connectBackoff  = 2 * time.Second

	topLimit = 10
)

type Storage struct {
	conn driver.Conn
	log  *slog.Logger
}

// New waits for ClickHouse to become reachable, provisions the database
// and the events table, and returns a storage sharing one connection pool
// between the consumers and the query server. Exhausting the retry budget
// is an error: the caller must not start serving without a store.
func New(ctx context.Context, log *slog.Logger, cfg config.ClickhouseStorage) (*Storage, error) {
	const op = "storage.clickhouse.New"

	var lastErr error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		conn, err := connect(ctx, cfg, "")
		if err == nil {
			log.Info("clickhouse connection established")

			conn, err = provision(ctx, conn, cfg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}

			return &Storage{conn: conn, log: log}, nil
		}

		lastErr = err
		log.Warn("waiting for clickhouse",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", connectAttempts),
			sl.Err(err),
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(connectBackoff):
		}
	}

	return nil, fmt.Errorf("%s: clickhouse is unreachable: %w", op, lastErr)
}

func connect(ctx context.Context, cfg config.ClickhouseStorage, database string) (driver.Conn, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("error connection to clickhouse: %w", err)
	}

	if err = conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse ping failed: %w", err)
	}

	return conn, nil
}

// provision creates the database and the events table if they are absent.
// Both statements are idempotent, so repeated startups are safe.
func provision(ctx context.Context, conn driver.Conn, cfg config.ClickhouseStorage) (driver.Conn, error) {
	if err := conn.Exec(ctx, "CREATE DATABASE IF NOT EXISTS "+cfg.Database); err != nil {
		return nil, fmt.Errorf("create database: %w", err)
	}

	if err := conn.Close(); err != nil {
		return nil, fmt.Errorf("close bootstrap connection: %w", err)
	}

	conn, err := connect(ctx, cfg, cfg.Database)
	if err != nil {
		return nil, err
	}

	query := `
	CREATE TABLE IF NOT EXISTS events (
		event_type Enum8('view' = 1, 'like' = 2, 'comment' = 3),
		client_id String,
		post_id Int64,
		comment_id Nullable(String),
		timestamp DateTime
	) ENGINE = MergeTree()
	PARTITION BY toYYYYMM(timestamp)
	ORDER BY (event_type, post_id, timestamp)
	`

	if err := conn.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("create events table: %w", err)
	}

	return conn, nil
}

// SaveEvent appends one event. Rows are visible to queries as soon as
// the call returns.
func (s *Storage) SaveEvent(ctx context.Context, event models.Event) error {
	const op = "storage.clickhouse.SaveEvent"

	batch, err := s.conn.PrepareBatch(ctx,
		"INSERT INTO events (event_type, client_id, post_id, comment_id, timestamp)",
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := batch.Append(
		string(event.Type),
		event.ClientID,
		event.PostID,
		event.CommentID,
		event.Timestamp,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CountEvents returns the number of stored events of one type for a post.
func (s *Storage) CountEvents(ctx context.Context, eventType models.EventType, postID int64) (uint64, error) {
	const op = "storage.clickhouse.CountEvents"

	var count uint64

	err := s.conn.QueryRow(ctx,
		"SELECT count() FROM events WHERE event_type = ? AND post_id = ?",
		string(eventType), postID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// Dynamics returns per-day counts for one (post, event type) pair,
// ascending by day. Days without events are absent from the result.
func (s *Storage) Dynamics(ctx context.Context, eventType models.EventType, postID int64) ([]models.DayCount, error) {
	const op = "storage.clickhouse.Dynamics"

	rows, err := s.conn.Query(ctx, `
		SELECT toDate(timestamp) AS day, count() AS count
		FROM events
		WHERE event_type = ? AND post_id = ?
		GROUP BY day
		ORDER BY day`,
		string(eventType), postID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.log.Error("failed to close dynamics rows", sl.Err(err))
		}
	}()

	var result []models.DayCount

	for rows.Next() {
		var dc models.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// TopPosts returns up to ten posts with the highest count of one event
// type, descending by count.
func (s *Storage) TopPosts(ctx context.Context, eventType models.EventType) ([]models.TopPost, error) {
	const op = "storage.clickhouse.TopPosts"

	rows, err := s.conn.Query(ctx, `
		SELECT post_id, count() AS count
		FROM events
		WHERE event_type = ?
		GROUP BY post_id
		ORDER BY count DESC
		LIMIT ?`,
		string(eventType), topLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.log.Error("failed to close top posts rows", sl.Err(err))
		}
	}()

	var result []models.TopPost

	for rows.Next() {
		var tp models.TopPost
		if err := rows.Scan(&tp.PostID, &tp.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, tp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// TopUsers returns up to ten users with the highest count of one event
// type, descending by count.
func (s *Storage) TopUsers(ctx context.Context, eventType models.EventType) ([]models.TopUser, error) {
	const op = "storage.clickhouse.TopUsers"

	rows, err := s.conn.Query(ctx, `
		SELECT client_id, count() AS count
		FROM events
		WHERE event_type = ?
		GROUP BY client_id
		ORDER BY count DESC
		LIMIT ?`,
		string(eventType), topLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.log.Error("failed to close top users rows", sl.Err(err))
		}
	}()

	var result []models.TopUser

	for rows.Next() {
		var tu models.TopUser
		if err := rows.Scan(&tu.ClientID, &tu.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, tu)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func (s *Storage) Close() error {
	return s.conn.Close()
}
