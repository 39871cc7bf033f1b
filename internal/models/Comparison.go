package models

type Status string

const (
	StatusInSync       Status = "IN_SYNC"
	StatusStaleA       Status = "STALE_A"
	StatusAheadA       Status = "AHEAD_A"
	StatusUncomparable Status = "UNCOMPARABLE"
	StatusFormatError  Status = "FORMAT_ERROR"
)

// Comparable reports whether DifferenceDays carries a real value for s.
func (s Status) Comparable() bool {
	return s == StatusInSync || s == StatusStaleA || s == StatusAheadA
}

type CompareRequest struct {
	GogID     string `json:"gog_id" validate:"required"`
	SteamID   string `json:"steam_id" validate:"required"`
	GameTitle string `json:"game_title" validate:"required"`
	GogOS     string `json:"gog_os"`
}

type ComparisonResult struct {
	GameTitle      string  `json:"game_title"`
	GogVersion     *string `json:"gog_version"`
	SteamVersion   *string `json:"steam_version"`
	GogDate        *string `json:"gog_date"`
	SteamDate      *string `json:"steam_date"`
	Status         Status  `json:"status"`
	DifferenceDays int     `json:"difference_days"`
	Message        string  `json:"message"`
}

// Optional returns nil for the empty string so unknown values encode as null.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
