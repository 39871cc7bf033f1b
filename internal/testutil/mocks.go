package testutil

import (
	"context"
	"sync"
	"time"
	"vcheck/internal/models"
	"vcheck/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Fields map[string]interface{}
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, fields map[string]interface{}, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Fields: fields, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, nil, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, nil, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, nil, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, nil, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, nil, format, args...)
}
func (m *MockLogger) Eventf(t providers.TypeEnum, fields map[string]interface{}, format string, args ...interface{}) {
	m.record("event", t, fields, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockGogClient implements interfaces.GogClientInterface.
type MockGogClient struct {
	mu          sync.Mutex
	Hits        []models.SearchHit
	SearchErr   error
	Info        models.VersionInfo
	FetchErr    error
	FetchCalls  int
	LastGameID  string
	LastOS      models.GogOS
	SearchCalls []string
}

func (m *MockGogClient) Search(_ context.Context, query string) ([]models.SearchHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls = append(m.SearchCalls, query)
	if m.SearchErr != nil {
		return []models.SearchHit{}, m.SearchErr
	}
	return m.Hits, nil
}

func (m *MockGogClient) FetchVersion(_ context.Context, gameID string, os models.GogOS) (models.VersionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	m.LastGameID = gameID
	m.LastOS = os
	if m.FetchErr != nil {
		return models.VersionInfo{}, m.FetchErr
	}
	return m.Info, nil
}

// MockSteamClient implements interfaces.SteamClientInterface.
type MockSteamClient struct {
	mu          sync.Mutex
	Hits        []models.SearchHit
	SearchErr   error
	Info        models.VersionInfo
	FetchErr    error
	FetchCalls  int
	LastGameID  string
	SearchCalls []string
}

func (m *MockSteamClient) Search(_ context.Context, query string) ([]models.SearchHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchCalls = append(m.SearchCalls, query)
	if m.SearchErr != nil {
		return []models.SearchHit{}, m.SearchErr
	}
	return m.Hits, nil
}

func (m *MockSteamClient) FetchVersion(_ context.Context, gameID string) (models.VersionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	m.LastGameID = gameID
	if m.FetchErr != nil {
		return models.VersionInfo{}, m.FetchErr
	}
	return m.Info, nil
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu          sync.Mutex
	Upstream    []string
	Comparisons []models.Status
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncUpstreamRequests(platform models.Platform, operation string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Upstream = append(m.Upstream, string(platform)+":"+operation+":"+outcome)
}
func (m *MockMetrics) ObserveUpstreamDuration(_ models.Platform, _ string, _ time.Duration) {}
func (m *MockMetrics) IncComparisons(status models.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Comparisons = append(m.Comparisons, status)
}

// ObservedCall is one call recorded by MockObserver.
type ObservedCall struct {
	Platform  models.Platform
	Operation string
	Err       error
}

// MockObserver implements providers.UpstreamObserverInterface.
type MockObserver struct {
	mu    sync.Mutex
	Calls []ObservedCall
}

func (m *MockObserver) Observe(platform models.Platform, operation string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, ObservedCall{Platform: platform, Operation: operation, Err: err})
}
