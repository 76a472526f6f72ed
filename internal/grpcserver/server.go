package grpcserver

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"showrank/internal/episodes"
	"showrank/internal/shows"
	"showrank/pkg/grpc/showpb"
)

type Server struct {
	showpb.UnimplementedShowServiceServer

	ShowRepo    *shows.Repo
	EpisodeRepo *episodes.Repo
}

func NewServer(showRepo *shows.Repo, episodeRepo *episodes.Repo) *Server {
	return &Server{ShowRepo: showRepo, EpisodeRepo: episodeRepo}
}

// NewGRPCServer builds a grpc.Server with s registered as ShowService.
func NewGRPCServer(s *Server, logger hclog.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.UnaryInterceptor(LoggingInterceptor(logger)),
	}, opts...)
	gs := grpc.NewServer(opts...)
	showpb.RegisterShowServiceServer(gs, s)
	return gs
}

func (s *Server) ListShows(ctx context.Context, req *showpb.ListShowsRequest) (*showpb.ListShowsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	if req.GetLimit() < 0 || req.GetOffset() < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit and offset must not be negative")
	}
	query := shows.ListQuery{
		Tiers:    req.GetTiers(),
		Networks: req.GetNetworks(),
		Tags:     req.GetTags(),
		Year:     int(req.GetYear()),
		Category: strings.TrimSpace(req.GetCategory()),
		Sort:     strings.TrimSpace(req.GetSort()),
		Order:    strings.TrimSpace(req.GetOrder()),
		Limit:    int(req.GetLimit()),
		Offset:   int(req.GetOffset()),
	}

	total, err := s.ShowRepo.Count(ctx, query)
	if err != nil {
		return nil, status.Error(codes.Internal, "count failed")
	}
	items, err := s.ShowRepo.List(ctx, query)
	if err != nil {
		return nil, status.Error(codes.Internal, "list failed")
	}
	return &showpb.ListShowsResponse{Total: int32(total), Items: showsToProto(items)}, nil
}

func (s *Server) GetShow(ctx context.Context, req *showpb.GetShowRequest) (*showpb.GetShowResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}

	item, err := s.ShowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, "get failed")
	}
	if item == nil {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &showpb.GetShowResponse{Show: showToProto(item)}, nil
}

func (s *Server) ListEpisodes(ctx context.Context, req *showpb.ListEpisodesRequest) (*showpb.ListEpisodesResponse, error) {
	id := strings.TrimSpace(req.GetShowId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "show_id required")
	}

	show, err := s.ShowRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, "get failed")
	}
	if show == nil {
		return nil, status.Error(codes.NotFound, "not found")
	}

	items, err := s.EpisodeRepo.ListByShow(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, "list failed")
	}
	out := make([]*showpb.Episode, 0, len(items))
	for i := range items {
		out = append(out, episodeToProto(&items[i]))
	}
	return &showpb.ListEpisodesResponse{Items: out}, nil
}

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor(logger hclog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("rpc", "method", info.FullMethod, "code", status.Code(err).String(), "took", time.Since(start))
		return resp, err
	}
}
