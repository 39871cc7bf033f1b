package models

type Platform string

const (
	PlatformGog   Platform = "GOG"
	PlatformSteam Platform = "Steam"
)

// SearchHit is one catalog entry returned by a platform search.
type SearchHit struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Platform    Platform `json:"platform"`
	SupportedOS []string `json:"supported_os"`
}

type SearchResponse struct {
	Gog   []SearchHit `json:"gog"`
	Steam []SearchHit `json:"steam"`
}
