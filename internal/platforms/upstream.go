package platforms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"vcheck/internal/models"
)

// Request describes a single GET against a platform API.
type Request struct {
	Platform models.Platform
	URL      string
	Query    url.Values
	Headers  map[string]string
	MaxBytes int64
}

// Get performs the request and returns the body of a 200 response. Any other
// status or transport problem is reported as ReasonUpstreamUnavailable.
func Get(ctx context.Context, client *http.Client, req Request) ([]byte, error) {
	target := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, models.NewFetchError(req.Platform, models.ReasonUpstreamUnavailable, err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, models.NewFetchError(req.Platform, models.ReasonUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, models.NewFetchError(req.Platform, models.ReasonUpstreamUnavailable,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body io.Reader = resp.Body
	if req.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, req.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, models.NewFetchError(req.Platform, models.ReasonUpstreamUnavailable,
			fmt.Errorf("reading body: %w", err))
	}
	if req.MaxBytes > 0 && int64(len(data)) > req.MaxBytes {
		return nil, models.NewFetchError(req.Platform, models.ReasonUpstreamUnavailable,
			fmt.Errorf("response exceeds %d bytes", req.MaxBytes))
	}
	return data, nil
}

// ExpandTemplate substitutes {name} placeholders. Values before the first
// '?' are path-escaped, values in the query string are query-escaped.
func ExpandTemplate(tpl string, values map[string]string) string {
	path, query, hasQuery := strings.Cut(tpl, "?")
	path = placeholderReplacer(values, url.PathEscape).Replace(path)
	if !hasQuery {
		return path
	}
	return path + "?" + placeholderReplacer(values, url.QueryEscape).Replace(query)
}

func placeholderReplacer(values map[string]string, escape func(string) string) *strings.Replacer {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", escape(v))
	}
	return strings.NewReplacer(pairs...)
}
