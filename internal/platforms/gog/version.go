package gog

import (
	"context"
	"errors"
	"strings"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/platforms"
	"vcheck/internal/providers"

	"github.com/tidwall/gjson"
)

const unknownVersion = "Unknown"

// FetchVersion returns the newest build published on the content system for
// the given game and OS. Builds are listed newest first.
func (c *Client) FetchVersion(ctx context.Context, gameID string, os models.GogOS) (info models.VersionInfo, err error) {
	start := time.Now()
	defer func() { c.observer.Observe(models.PlatformGog, opVersion, time.Since(start), err) }()

	os, err = models.ParseGogOS(string(os))
	if err != nil {
		return info, err
	}

	id := strings.TrimSpace(gameID)
	target := platforms.ExpandTemplate(c.contentURL, map[string]string{
		"game_id": id,
		"os":      string(os),
	})

	c.logger.Infof(providers.TypeUpstream, "Requesting GOG builds: %s", target)
	body, err := platforms.Get(ctx, c.httpClient, platforms.Request{
		Platform: models.PlatformGog,
		URL:      target,
		Headers:  c.headers(false),
		MaxBytes: c.maxBodySize,
	})
	if err != nil {
		c.logger.Warnf(providers.TypeUpstream, "GOG builds for %s unavailable: %s", id, err)
		return info, err
	}

	if !gjson.ValidBytes(body) {
		return info, c.parseFailure(errors.New("builds response is not valid JSON"))
	}

	latest := gjson.GetBytes(body, "items.0")
	if !latest.Exists() {
		c.logger.Warnf(providers.TypeUpstream, "GOG returned no builds for %s", id)
		return info, models.NewFetchError(models.PlatformGog, models.ReasonNoData, nil)
	}

	info.Version = unknownVersion
	if v := latest.Get("version_name"); v.Exists() && v.String() != "" {
		info.Version = v.String()
	}
	if published := latest.Get("date_published"); published.Type == gjson.String {
		info.ReleaseDate, _, _ = strings.Cut(published.String(), "T")
	}

	return info, nil
}
