package statistics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/georgyshamteev/SOA/internal/domain/models"
	statisticsService "github.com/georgyshamteev/SOA/internal/services/statistics"
	statisticsv1 "github.com/georgyshamteev/SOA/protos/gen/go/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStats struct {
	stats    models.PostStats
	dynamics []models.DayCount
	topPosts []models.TopPost
	topUsers []models.TopUser
	err      error

	calls int
}

func (f *fakeStats) PostStats(_ context.Context, _ int64) (models.PostStats, error) {
	f.calls++
	return f.stats, f.err
}

func (f *fakeStats) Dynamics(_ context.Context, _ models.EventType, _ int64) ([]models.DayCount, error) {
	f.calls++
	return f.dynamics, f.err
}

func (f *fakeStats) TopPosts(_ context.Context, _ string) ([]models.TopPost, error) {
	f.calls++
	return f.topPosts, f.err
}

func (f *fakeStats) TopUsers(_ context.Context, _ string) ([]models.TopUser, error) {
	f.calls++
	return f.topUsers, f.err
}

func TestGetPostStats_HappyPath(t *testing.T) {
	fake := &fakeStats{stats: models.PostStats{Views: 3, Likes: 2, Comments: 1}}
	s := &serverAPI{stats: fake}

	resp, err := s.GetPostStats(context.Background(), &statisticsv1.PostIdRequest{PostId: 42})
	require.NoError(t, err)

	assert.Equal(t, uint64(3), resp.GetViews())
	assert.Equal(t, uint64(2), resp.GetLikes())
	assert.Equal(t, uint64(1), resp.GetComments())
}

func TestGetPostStats_EmptyPostId(t *testing.T) {
	fake := &fakeStats{}
	s := &serverAPI{stats: fake}

	_, err := s.GetPostStats(context.Background(), &statisticsv1.PostIdRequest{})
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, fake.calls, "validation must reject before the service is called")
}

func TestGetPostStats_StorageFailure(t *testing.T) {
	fake := &fakeStats{err: fmt.Errorf("statistics.PostStats: clickhouse is down")}
	s := &serverAPI{stats: fake}

	_, err := s.GetPostStats(context.Background(), &statisticsv1.PostIdRequest{PostId: 42})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, st.Message(), "internal error")
}

func TestGetViewDynamics_FormatsDates(t *testing.T) {
	fake := &fakeStats{dynamics: []models.DayCount{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Count: 5},
	}}
	s := &serverAPI{stats: fake}

	resp, err := s.GetViewDynamics(context.Background(), &statisticsv1.PostIdRequest{PostId: 7})
	require.NoError(t, err)

	require.Len(t, resp.GetData(), 2)
	assert.Equal(t, "2025-06-01", resp.GetData()[0].GetDate())
	assert.Equal(t, uint64(2), resp.GetData()[0].GetCount())
	assert.Equal(t, "2025-06-03", resp.GetData()[1].GetDate())
	assert.Equal(t, uint64(5), resp.GetData()[1].GetCount())
}

func TestGetLikeDynamics_EmptyPostId(t *testing.T) {
	s := &serverAPI{stats: &fakeStats{}}

	_, err := s.GetLikeDynamics(context.Background(), &statisticsv1.PostIdRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetCommentDynamics_StorageFailure(t *testing.T) {
	s := &serverAPI{stats: &fakeStats{err: fmt.Errorf("scan failed")}}

	_, err := s.GetCommentDynamics(context.Background(), &statisticsv1.PostIdRequest{PostId: 7})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGetTopPosts_HappyPath(t *testing.T) {
	fake := &fakeStats{topPosts: []models.TopPost{
		{PostID: 1, Count: 5},
		{PostID: 2, Count: 3},
	}}
	s := &serverAPI{stats: fake}

	resp, err := s.GetTopPosts(context.Background(), &statisticsv1.TopRequest{Metric: "view"})
	require.NoError(t, err)

	require.Len(t, resp.GetTopPosts(), 2)
	assert.Equal(t, int64(1), resp.GetTopPosts()[0].GetPostId())
	assert.Equal(t, uint64(5), resp.GetTopPosts()[0].GetCount())
	assert.Equal(t, int64(2), resp.GetTopPosts()[1].GetPostId())
	assert.Equal(t, uint64(3), resp.GetTopPosts()[1].GetCount())
}

func TestGetTopPosts_Validation(t *testing.T) {
	cases := []struct {
		name   string
		metric string
	}{
		{name: "empty metric", metric: ""},
		{name: "unknown metric", metric: "clicks"},
		{name: "plural of a valid metric", metric: "views"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeStats{}
			s := &serverAPI{stats: fake}

			_, err := s.GetTopPosts(context.Background(), &statisticsv1.TopRequest{Metric: tc.metric})
			require.Error(t, err)

			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Equal(t, 0, fake.calls, "an unknown metric must never default to a valid one")
		})
	}
}

func TestGetTopPosts_ServiceRejectsMetric(t *testing.T) {
	// defense in depth: the service-level rejection maps to the same code
	fake := &fakeStats{err: fmt.Errorf("statistics.TopPosts: %w", statisticsService.ErrUnknownMetric)}
	s := &serverAPI{stats: fake}

	_, err := s.GetTopPosts(context.Background(), &statisticsv1.TopRequest{Metric: "view"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetTopUsers_HappyPath(t *testing.T) {
	fake := &fakeStats{topUsers: []models.TopUser{
		{ClientID: "user-a", Count: 9},
		{ClientID: "user-b", Count: 4},
	}}
	s := &serverAPI{stats: fake}

	resp, err := s.GetTopUsers(context.Background(), &statisticsv1.TopRequest{Metric: "like"})
	require.NoError(t, err)

	require.Len(t, resp.GetTopUsers(), 2)
	assert.Equal(t, "user-a", resp.GetTopUsers()[0].GetUserId())
	assert.Equal(t, uint64(9), resp.GetTopUsers()[0].GetCount())
}

func TestGetTopUsers_UnknownMetric(t *testing.T) {
	fake := &fakeStats{}
	s := &serverAPI{stats: fake}

	_, err := s.GetTopUsers(context.Background(), &statisticsv1.TopRequest{Metric: "registration"})
	require.Error(t, err)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, fake.calls)
}

func TestGetTopUsers_StorageFailure(t *testing.T) {
	s := &serverAPI{stats: &fakeStats{err: fmt.Errorf("connection refused")}}

	_, err := s.GetTopUsers(context.Background(), &statisticsv1.TopRequest{Metric: "comment"})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}
