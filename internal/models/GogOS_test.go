package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGogOS(t *testing.T) {
	tests := []struct {
		selector string
		expected GogOS
	}{
		{"windows", GogOSWindows},
		{"Windows", GogOSWindows},
		{"", GogOSWindows},
		{"mac", GogOSMac},
		{" MAC ", GogOSMac},
		{"osx", GogOSMac},
		{"linux", GogOSLinux},
	}
	for _, tt := range tests {
		got, err := ParseGogOS(tt.selector)
		require.NoError(t, err, tt.selector)
		assert.Equal(t, tt.expected, got, tt.selector)
	}
}

func TestParseGogOS_RejectsUnknown(t *testing.T) {
	for _, selector := range []string{"win", "macos", "android", "windows;rm"} {
		_, err := ParseGogOS(selector)
		assert.ErrorIs(t, err, ErrUnsupportedOS, selector)
	}
}
