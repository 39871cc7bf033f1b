package steam

import (
	"context"
	"net/url"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/platforms"
	"vcheck/internal/providers"

	json "github.com/goccy/go-json"
)

type storeSearchResponse struct {
	Total int               `json:"total"`
	Items []storeSearchItem `json:"items"`
}

type storeSearchItem struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// Search queries the Steam store. The store does not report platforms here,
// so SupportedOS is always empty.
func (c *Client) Search(ctx context.Context, query string) (hits []models.SearchHit, err error) {
	start := time.Now()
	defer func() { c.observer.Observe(models.PlatformSteam, opSearch, time.Since(start), err) }()

	hits = []models.SearchHit{}

	params := url.Values{}
	params.Set("term", query)
	params.Set("l", "english")
	params.Set("cc", "EN")

	c.logger.Debugf(providers.TypeUpstream, "Steam store search %q", query)
	body, err := platforms.Get(ctx, c.httpClient, platforms.Request{
		Platform: models.PlatformSteam,
		URL:      c.storeURL,
		Query:    params,
		Headers:  map[string]string{"Accept": "application/json"},
		MaxBytes: c.maxBodySize,
	})
	if err != nil {
		return hits, err
	}

	var resp storeSearchResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return hits, c.parseFailure(err)
	}

	for _, item := range resp.Items {
		if item.ID == "" {
			continue
		}
		hits = append(hits, models.SearchHit{
			ID:          item.ID.String(),
			Title:       item.Name,
			Platform:    models.PlatformSteam,
			SupportedOS: []string{},
		})
	}
	return hits, nil
}
