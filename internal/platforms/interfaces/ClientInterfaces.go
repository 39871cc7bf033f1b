package interfaces

import (
	"context"
	"vcheck/internal/models"
)

// Searcher queries a platform catalog. On failure it returns an empty,
// non-nil slice together with a *models.FetchError.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchHit, error)
}

type GogClientInterface interface {
	Searcher
	FetchVersion(ctx context.Context, gameID string, os models.GogOS) (models.VersionInfo, error)
}

type SteamClientInterface interface {
	Searcher
	FetchVersion(ctx context.Context, gameID string) (models.VersionInfo, error)
}
