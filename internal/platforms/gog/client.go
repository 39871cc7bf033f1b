package gog

import (
	"net/http"
	"vcheck/internal/models"
	"vcheck/internal/platforms/interfaces"
	"vcheck/internal/providers"
	"vcheck/internal/structures"
)

const (
	referer     = "https://www.gog.com/"
	searchLimit = "20"

	opSearch  = "search"
	opVersion = "version"
)

// Client talks to the GOG catalog and content-system APIs.
type Client struct {
	httpClient  *http.Client
	logger      providers.Logger
	observer    providers.UpstreamObserverInterface
	catalogURL  string
	contentURL  string
	userAgent   string
	maxBodySize int64
}

func NewClient(conf *structures.Config, httpClient *http.Client, logger providers.Logger, observer providers.UpstreamObserverInterface) interfaces.GogClientInterface {
	return &Client{
		httpClient:  httpClient,
		logger:      logger,
		observer:    observer,
		catalogURL:  conf.Upstream.GogCatalogURL,
		contentURL:  conf.Upstream.GogContentURL,
		userAgent:   conf.Upstream.UserAgent,
		maxBodySize: conf.Upstream.MaxResponseSize,
	}
}

func (c *Client) headers(withReferer bool) map[string]string {
	h := map[string]string{
		"User-Agent": c.userAgent,
		"Accept":     "application/json",
	}
	if withReferer {
		h["Referer"] = referer
	}
	return h
}

func (c *Client) parseFailure(err error) *models.FetchError {
	return models.NewFetchError(models.PlatformGog, models.ReasonParseFailure, err)
}
