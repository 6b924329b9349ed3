package statistics

import (
	"context"
	"errors"

	"github.com/asaskevich/govalidator"
	"github.com/georgyshamteev/SOA/internal/domain/models"
	statisticsService "github.com/georgyshamteev/SOA/internal/services/statistics"
	statisticsv1 "github.com/georgyshamteev/SOA/protos/gen/go/statistics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Stats interface {
	PostStats(ctx context.Context, postID int64) (models.PostStats, error)
	Dynamics(ctx context.Context, eventType models.EventType, postID int64) ([]models.DayCount, error)
	TopPosts(ctx context.Context, metric string) ([]models.TopPost, error)
	TopUsers(ctx context.Context, metric string) ([]models.TopUser, error)
}

type serverAPI struct {
	statisticsv1.UnimplementedStatisticsServer
	stats Stats
}

func Register(gRPC *grpc.Server, stats Stats) {
	statisticsv1.RegisterStatisticsServer(gRPC, &serverAPI{stats: stats})
}

const (
	emptyValue = 0

	dateLayout = "2006-01-02"
)

func (s *serverAPI) GetPostStats(
	ctx context.Context,
	req *statisticsv1.PostIdRequest,
) (*statisticsv1.PostStatsResponse, error) {

	if err := validatePostId(req); err != nil {
		return nil, err
	}

	stats, err := s.stats.PostStats(ctx, req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal error: %v", err)
	}

	return &statisticsv1.PostStatsResponse{
		Views:    stats.Views,
		Likes:    stats.Likes,
		Comments: stats.Comments,
	}, nil
}

func (s *serverAPI) GetViewDynamics(
	ctx context.Context,
	req *statisticsv1.PostIdRequest,
) (*statisticsv1.DynamicsResponse, error) {
	return s.getDynamics(ctx, req, models.EventTypeView)
}

func (s *serverAPI) GetLikeDynamics(
	ctx context.Context,
	req *statisticsv1.PostIdRequest,
) (*statisticsv1.DynamicsResponse, error) {
	return s.getDynamics(ctx, req, models.EventTypeLike)
}

func (s *serverAPI) GetCommentDynamics(
	ctx context.Context,
	req *statisticsv1.PostIdRequest,
) (*statisticsv1.DynamicsResponse, error) {
	return s.getDynamics(ctx, req, models.EventTypeComment)
}

func (s *serverAPI) getDynamics(
	ctx context.Context,
	req *statisticsv1.PostIdRequest,
	eventType models.EventType,
) (*statisticsv1.DynamicsResponse, error) {

	if err := validatePostId(req); err != nil {
		return nil, err
	}

	dynamics, err := s.stats.Dynamics(ctx, eventType, req.GetPostId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal error: %v", err)
	}

	data := make([]*statisticsv1.DayCount, 0, len(dynamics))
	for _, dc := range dynamics {
		data = append(data, &statisticsv1.DayCount{
			Date:  dc.Date.Format(dateLayout),
			Count: dc.Count,
		})
	}

	return &statisticsv1.DynamicsResponse{Data: data}, nil
}

func (s *serverAPI) GetTopPosts(
	ctx context.Context,
	req *statisticsv1.TopRequest,
) (*statisticsv1.TopPostsResponse, error) {

	if err := validateMetric(req); err != nil {
		return nil, err
	}

	posts, err := s.stats.TopPosts(ctx, req.GetMetric())
	if err != nil {
		if errors.Is(err, statisticsService.ErrUnknownMetric) {
			return nil, status.Error(codes.InvalidArgument, "invalid metric type")
		}
		return nil, status.Errorf(codes.Internal, "internal error: %v", err)
	}

	topPosts := make([]*statisticsv1.TopPost, 0, len(posts))
	for _, tp := range posts {
		topPosts = append(topPosts, &statisticsv1.TopPost{
			PostId: tp.PostID,
			Count:  tp.Count,
		})
	}

	return &statisticsv1.TopPostsResponse{TopPosts: topPosts}, nil
}

func (s *serverAPI) GetTopUsers(
	ctx context.Context,
	req *statisticsv1.TopRequest,
) (*statisticsv1.TopUsersResponse, error) {

	if err := validateMetric(req); err != nil {
		return nil, err
	}

	users, err := s.stats.TopUsers(ctx, req.GetMetric())
	if err != nil {
		if errors.Is(err, statisticsService.ErrUnknownMetric) {
			return nil, status.Error(codes.InvalidArgument, "invalid metric type")
		}
		return nil, status.Errorf(codes.Internal, "internal error: %v", err)
	}

	topUsers := make([]*statisticsv1.TopUser, 0, len(users))
	for _, tu := range users {
		topUsers = append(topUsers, &statisticsv1.TopUser{
			UserId: tu.ClientID,
			Count:  tu.Count,
		})
	}

	return &statisticsv1.TopUsersResponse{TopUsers: topUsers}, nil
}

func validatePostId(req *statisticsv1.PostIdRequest) error {
	if req.GetPostId() == emptyValue {
		return status.Error(codes.InvalidArgument, "post_id is required")
	}

	return nil
}

func validateMetric(req *statisticsv1.TopRequest) error {
	if req.GetMetric() == "" {
		return status.Error(codes.InvalidArgument, "metric is required")
	}

	if !govalidator.IsIn(req.GetMetric(),
		string(models.EventTypeView),
		string(models.EventTypeLike),
		string(models.EventTypeComment),
	) {
		return status.Error(codes.InvalidArgument, "invalid metric type")
	}

	return nil
}
