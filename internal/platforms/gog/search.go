package gog

import (
	"context"
	"errors"
	"net/url"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/platforms"
	"vcheck/internal/providers"

	"github.com/tidwall/gjson"
)

// Search looks the query up in the GOG catalog, best matches first.
func (c *Client) Search(ctx context.Context, query string) (hits []models.SearchHit, err error) {
	start := time.Now()
	defer func() { c.observer.Observe(models.PlatformGog, opSearch, time.Since(start), err) }()

	hits = []models.SearchHit{}

	params := url.Values{}
	params.Set("limit", searchLimit)
	params.Set("productType", "in:game")
	params.Set("order", "desc:score")
	params.Set("query", query)

	c.logger.Debugf(providers.TypeUpstream, "GOG catalog search %q", query)
	body, err := platforms.Get(ctx, c.httpClient, platforms.Request{
		Platform: models.PlatformGog,
		URL:      c.catalogURL,
		Query:    params,
		Headers:  c.headers(true),
		MaxBytes: c.maxBodySize,
	})
	if err != nil {
		return hits, err
	}

	if !gjson.ValidBytes(body) {
		return hits, c.parseFailure(errors.New("catalog response is not valid JSON"))
	}

	gjson.GetBytes(body, "products").ForEach(func(_, product gjson.Result) bool {
		id := product.Get("id")
		if !id.Exists() {
			return true
		}
		osList := []string{}
		product.Get("operatingSystems").ForEach(func(_, os gjson.Result) bool {
			osList = append(osList, os.String())
			return true
		})
		hits = append(hits, models.SearchHit{
			ID:          id.String(),
			Title:       product.Get("title").String(),
			Platform:    models.PlatformGog,
			SupportedOS: osList,
		})
		return true
	})

	return hits, nil
}
