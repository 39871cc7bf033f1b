package models

import (
	"fmt"
	"strings"
)

// GogOS is an operating system code understood by the GOG content system.
type GogOS string

const (
	GogOSWindows GogOS = "windows"
	GogOSMac     GogOS = "osx"
	GogOSLinux   GogOS = "linux"

	DefaultGogOS = "windows"
)

var gogOSSelectors = map[string]GogOS{
	"windows": GogOSWindows,
	"mac":     GogOSMac,
	"osx":     GogOSMac,
	"linux":   GogOSLinux,
}

// ParseGogOS maps a user supplied OS selector to its GOG code.
// An empty selector means the default.
func ParseGogOS(selector string) (GogOS, error) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if key == "" {
		key = DefaultGogOS
	}
	os, ok := gogOSSelectors[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOS, selector)
	}
	return os, nil
}
