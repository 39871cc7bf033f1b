package providers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"vcheck/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypeEnum(TypePost), GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeEnum(TypeGet), GetLogTypeByRequestType("DELETE"))
}

func logConfig(dir string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(logConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypePost, "post message")

	for _, name := range []string{"app.log", "get.log", "post.log", "upstream.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestNewLogProvider_EventWritesFields(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(logConfig(dir))
	require.NoError(t, err)

	logger.Eventf(TypeUpstream, map[string]interface{}{"platform": "GOG", "latency_ms": 12}, "GOG version finished")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "upstream.log"))
	require.NoError(t, err)
	line := string(data)
	assert.True(t, strings.Contains(line, `"platform":"GOG"`), line)
	assert.Contains(t, line, `"latency_ms":12`)
	assert.Contains(t, line, `"type":"upstream"`)
}

func TestNewLogProvider_LevelFilters(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(logConfig(dir))
	require.NoError(t, err)

	logger.Debugf(TypeGet, "hidden")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "get.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	_, err := NewLogProvider(logConfig("/nonexistent/directory/path"))
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := logConfig(t.TempDir())
	conf.Logger.Level = "loud"
	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
