package services

import (
	"context"
	"fmt"
	"vcheck/internal/models"
	"vcheck/internal/platforms/interfaces"
	"vcheck/internal/providers"
)

type ComparisonServiceInterface interface {
	Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error)
}

type ComparisonService struct {
	gog     interfaces.GogClientInterface
	steam   interfaces.SteamClientInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewComparisonService(gog interfaces.GogClientInterface, steam interfaces.SteamClientInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) ComparisonServiceInterface {
	return &ComparisonService{
		gog:     gog,
		steam:   steam,
		logger:  logger,
		metrics: metrics,
	}
}

// Compare fetches GOG first, then Steam, and classifies their release dates.
// A platform without usable data yields *models.NotFoundError and no result.
func (cs *ComparisonService) Compare(ctx context.Context, req models.CompareRequest) (*models.ComparisonResult, error) {
	gogOS, err := models.ParseGogOS(req.GogOS)
	if err != nil {
		return nil, err
	}

	gogInfo, err := cs.gog.FetchVersion(ctx, req.GogID, gogOS)
	if err != nil {
		return nil, &models.NotFoundError{Platform: models.PlatformGog, Err: err}
	}

	steamInfo, err := cs.steam.FetchVersion(ctx, req.SteamID)
	if err != nil {
		return nil, &models.NotFoundError{Platform: models.PlatformSteam, Err: err}
	}

	days, status := CompareDates(gogInfo.ReleaseDate, steamInfo.ReleaseDate)
	cs.metrics.IncComparisons(status)
	cs.logger.Infof(providers.TypePost, "Compared %q (gog %s, steam %s): %s, %d days",
		req.GameTitle, req.GogID, req.SteamID, status, days)

	return &models.ComparisonResult{
		GameTitle:      req.GameTitle,
		GogVersion:     models.Optional(gogInfo.Version),
		SteamVersion:   models.Optional(steamInfo.Version),
		GogDate:        models.Optional(gogInfo.ReleaseDate),
		SteamDate:      models.Optional(steamInfo.ReleaseDate),
		Status:         status,
		DifferenceDays: days,
		Message:        StatusMessage(status, days),
	}, nil
}

func StatusMessage(status models.Status, days int) string {
	switch status {
	case models.StatusInSync:
		return "Versions are in sync!"
	case models.StatusStaleA:
		return fmt.Sprintf("GOG is %d days behind Steam.", days)
	case models.StatusAheadA:
		return fmt.Sprintf("GOG appears to have a newer build (%d days ahead of Steam).", -days)
	default:
		return "No clear conclusion."
	}
}
