package services

import (
	"context"
	"vcheck/internal/models"
	"vcheck/internal/platforms/interfaces"
	"vcheck/internal/providers"
)

type SearchServiceInterface interface {
	Search(ctx context.Context, query string) models.SearchResponse
}

type SearchService struct {
	gog    interfaces.GogClientInterface
	steam  interfaces.SteamClientInterface
	logger providers.Logger
}

func NewSearchService(gog interfaces.GogClientInterface, steam interfaces.SteamClientInterface, logger providers.Logger) SearchServiceInterface {
	return &SearchService{
		gog:    gog,
		steam:  steam,
		logger: logger,
	}
}

// Search queries GOG then Steam. A failing platform contributes an empty list.
func (ss *SearchService) Search(ctx context.Context, query string) models.SearchResponse {
	return models.SearchResponse{
		Gog:   ss.searchOne(ctx, models.PlatformGog, ss.gog, query),
		Steam: ss.searchOne(ctx, models.PlatformSteam, ss.steam, query),
	}
}

func (ss *SearchService) searchOne(ctx context.Context, platform models.Platform, searcher interfaces.Searcher, query string) []models.SearchHit {
	hits, err := searcher.Search(ctx, query)
	if err != nil {
		ss.logger.Warnf(providers.TypeGet, "%s search for %q failed: %s", platform, query, err)
		return []models.SearchHit{}
	}
	if hits == nil {
		return []models.SearchHit{}
	}
	return hits
}
