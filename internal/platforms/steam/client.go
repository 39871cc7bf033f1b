package steam

import (
	"net/http"
	"vcheck/internal/models"
	"vcheck/internal/platforms/interfaces"
	"vcheck/internal/providers"
	"vcheck/internal/structures"
)

const (
	feedAccept = "application/rss+xml, application/xml"

	opSearch  = "search"
	opVersion = "version"
)

// Client talks to the Steam store search API and the SteamDB patch-notes feed.
type Client struct {
	httpClient  *http.Client
	logger      providers.Logger
	observer    providers.UpstreamObserverInterface
	storeURL    string
	feedURL     string
	userAgent   string
	maxBodySize int64
}

func NewClient(conf *structures.Config, httpClient *http.Client, logger providers.Logger, observer providers.UpstreamObserverInterface) interfaces.SteamClientInterface {
	return &Client{
		httpClient:  httpClient,
		logger:      logger,
		observer:    observer,
		storeURL:    conf.Upstream.SteamStoreURL,
		feedURL:     conf.Upstream.SteamFeedURL,
		userAgent:   conf.Upstream.UserAgent,
		maxBodySize: conf.Upstream.MaxResponseSize,
	}
}

func (c *Client) parseFailure(err error) *models.FetchError {
	return models.NewFetchError(models.PlatformSteam, models.ReasonParseFailure, err)
}
