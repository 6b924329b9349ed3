package tests

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/georgyshamteev/SOA/internal/kafka"
	statisticsv1 "github.com/georgyshamteev/SOA/protos/gen/go/statistics"
	"github.com/georgyshamteev/SOA/tests/suite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// These tests expect a running deployment: kafka, clickhouse and the
// statistics service itself.

const (
	propagationTimeout = 30 * time.Second
	pollInterval       = time.Second
)

func TestGetTopPosts_InvalidMetric(t *testing.T) {
	ctx, st := suite.New(t)

	_, err := st.StatsClient.GetTopPosts(ctx, &statisticsv1.TopRequest{
		Metric: "registration",
	})
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.ErrorContains(t, err, "invalid metric type")
}

func TestGetTopUsers_EmptyMetric(t *testing.T) {
	ctx, st := suite.New(t)

	_, err := st.StatsClient.GetTopUsers(ctx, &statisticsv1.TopRequest{})
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.ErrorContains(t, err, "metric is required")
}

func TestGetPostStats_EmptyPostId(t *testing.T) {
	ctx, st := suite.New(t)

	_, err := st.StatsClient.GetPostStats(ctx, &statisticsv1.PostIdRequest{})
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.ErrorContains(t, err, "post_id is required")
}

func TestViewEvents_HappyPath(t *testing.T) {
	ctx, st := suite.New(t)

	// a fresh post id isolates this run from previous data
	postID := int64(gofakeit.Number(1_000_000, 900_000_000))

	producer := kafka.NewProducer(st.Cfg.Kafka.Brokers, kafka.TopicViewEvents)
	defer func() {
		require.NoError(t, producer.Close())
	}()

	actors := []string{gofakeit.Username(), gofakeit.Username(), gofakeit.Username()}
	for _, actor := range actors {
		err := producer.Publish(ctx, uuid.NewString(), map[string]any{
			"client_id": actor,
			"post_id":   postID,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		callCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		resp, err := st.StatsClient.GetPostStats(callCtx, &statisticsv1.PostIdRequest{PostId: postID})
		if err != nil {
			return false
		}

		return resp.GetViews() == 3 && resp.GetLikes() == 0 && resp.GetComments() == 0
	}, propagationTimeout, pollInterval, "expected 3 views and nothing else for post %d", postID)
}

func TestLikeDynamics_GroupedByDay(t *testing.T) {
	ctx, st := suite.New(t)

	postID := int64(gofakeit.Number(1_000_000, 900_000_000))
	clientID := gofakeit.Username()

	day1 := time.Now().UTC().AddDate(0, 0, -2)
	day2 := time.Now().UTC().AddDate(0, 0, -1)

	producer := kafka.NewProducer(st.Cfg.Kafka.Brokers, kafka.TopicLikeEvents)
	defer func() {
		require.NoError(t, producer.Close())
	}()

	for _, ts := range []time.Time{day1, day1, day2} {
		err := producer.Publish(ctx, uuid.NewString(), map[string]any{
			"client_id": clientID,
			"post_id":   postID,
			"timestamp": ts.Format(time.RFC3339),
		})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		callCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		resp, err := st.StatsClient.GetLikeDynamics(callCtx, &statisticsv1.PostIdRequest{PostId: postID})
		if err != nil || len(resp.GetData()) != 2 {
			return false
		}

		first, second := resp.GetData()[0], resp.GetData()[1]

		return first.GetDate() == day1.Format("2006-01-02") && first.GetCount() == 2 &&
			second.GetDate() == day2.Format("2006-01-02") && second.GetCount() == 1
	}, propagationTimeout, pollInterval)
}

func TestCommentEvents_ReplayedMessageCountedTwice(t *testing.T) {
	ctx, st := suite.New(t)

	postID := int64(gofakeit.Number(1_000_000, 900_000_000))

	producer := kafka.NewProducer(st.Cfg.Kafka.Brokers, kafka.TopicCommentEvents)
	defer func() {
		require.NoError(t, producer.Close())
	}()

	payload := map[string]any{
		"client_id":  gofakeit.Username(),
		"post_id":    postID,
		"comment_id": uuid.NewString(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}

	// the pipeline does not deduplicate: the same payload twice must
	// count as two comments
	require.NoError(t, producer.Publish(ctx, uuid.NewString(), payload))
	require.NoError(t, producer.Publish(ctx, uuid.NewString(), payload))

	require.Eventually(t, func() bool {
		callCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		resp, err := st.StatsClient.GetPostStats(callCtx, &statisticsv1.PostIdRequest{PostId: postID})
		if err != nil {
			return false
		}

		return resp.GetComments() == 2
	}, propagationTimeout, pollInterval)
}
