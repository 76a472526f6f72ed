package grpcserver

import (
	"showrank/pkg/grpc/showpb"
	"showrank/pkg/models"
)

func showToProto(s *models.Show) *showpb.Show {
	out := &showpb.Show{
		Id:           s.ID,
		Name:         s.Name,
		Season:       int32(s.Season),
		Network:      s.Network,
		Tags:         s.Tags,
		Score:        s.Score,
		Tier:         s.Tier,
		Year:         int32(s.Year),
		Category:     s.Category,
		Description:  s.Description,
		CoverUrl:     s.CoverURL,
		TvmazeRating: s.TVMazeRating,
	}
	if s.AbsoluteRank != nil {
		out.AbsoluteRank = int32Ptr(*s.AbsoluteRank)
	}
	if s.TVMazeID != nil {
		out.TvmazeId = int32Ptr(*s.TVMazeID)
	}
	return out
}

func showsToProto(items []models.Show) []*showpb.Show {
	out := make([]*showpb.Show, 0, len(items))
	for i := range items {
		out = append(out, showToProto(&items[i]))
	}
	return out
}

func episodeToProto(e *models.Episode) *showpb.Episode {
	out := &showpb.Episode{
		Id:              e.ID,
		ShowId:          e.ShowID,
		TvmazeEpisodeId: int32(e.TVMazeEpisodeID),
		Name:            e.Name,
		Season:          int32(e.Season),
		Number:          int32(e.Number),
		Airdate:         e.AirdateString(),
		Summary:         e.Summary,
		ImageUrl:        e.ImageURL,
		Rating:          e.Rating,
	}
	if e.Runtime != nil {
		out.Runtime = int32Ptr(*e.Runtime)
	}
	return out
}

func int32Ptr(v int) *int32 {
	n := int32(v)
	return &n
}
