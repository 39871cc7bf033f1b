package models

// VersionInfo is the latest build or patch known for a game on one platform.
// Empty fields mean the upstream did not provide them.
type VersionInfo struct {
	Version     string `json:"version"`
	ReleaseDate string `json:"release_date"`
}

func (v VersionInfo) HasDate() bool {
	return v.ReleaseDate != ""
}
