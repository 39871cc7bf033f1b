package providers

import (
	"net"
	"net/http"
	"time"
	"vcheck/internal/structures"
)

// NewHttpClientProvider builds the client shared by both platform adapters.
// The timeout bounds the whole exchange, body included.
func NewHttpClientProvider(conf *structures.Config) *http.Client {
	return &http.Client{
		Timeout: conf.Upstream.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 4,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
