package steam

import (
	"bytes"
	"context"
	"strings"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/platforms"
	"vcheck/internal/providers"

	"github.com/mmcdole/gofeed/rss"
)

const (
	unknownPatch = "Unknown patch"
	dateLayout   = "2006-01-02"
)

// pubDate layouts tried in order; the feed's own offset decides the calendar day.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
}

// FetchVersion reads the newest entry of the SteamDB patch-notes feed.
func (c *Client) FetchVersion(ctx context.Context, gameID string) (info models.VersionInfo, err error) {
	start := time.Now()
	defer func() { c.observer.Observe(models.PlatformSteam, opVersion, time.Since(start), err) }()

	id := strings.TrimSpace(gameID)
	target := platforms.ExpandTemplate(c.feedURL, map[string]string{"game_id": id})

	c.logger.Infof(providers.TypeUpstream, "Requesting SteamDB patch feed: %s", target)
	body, err := platforms.Get(ctx, c.httpClient, platforms.Request{
		Platform: models.PlatformSteam,
		URL:      target,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     feedAccept,
		},
		MaxBytes: c.maxBodySize,
	})
	if err != nil {
		c.logger.Warnf(providers.TypeUpstream, "SteamDB feed for %s unavailable: %s", id, err)
		return info, err
	}

	parser := &rss.Parser{}
	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		c.logger.Warnf(providers.TypeUpstream, "SteamDB feed for %s is not valid RSS: %s", id, err)
		return info, c.parseFailure(err)
	}
	if len(feed.Items) == 0 || feed.Items[0] == nil {
		return info, models.NewFetchError(models.PlatformSteam, models.ReasonNoData, nil)
	}

	latest := feed.Items[0]
	info.Version = strings.TrimSpace(latest.Title)
	if info.Version == "" {
		info.Version = unknownPatch
	}
	info.ReleaseDate = feedDate(latest)

	return info, nil
}

// feedDate converts pubDate to YYYY-MM-DD. An unparseable value is passed
// through unchanged so the comparison reports it as a format error.
func feedDate(item *rss.Item) string {
	raw := strings.TrimSpace(item.PubDate)
	if raw == "" {
		return ""
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout)
		}
	}
	if item.PubDateParsed != nil {
		return item.PubDateParsed.Format(dateLayout)
	}
	return raw
}
