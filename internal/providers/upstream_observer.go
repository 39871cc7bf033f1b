package providers

import (
	"time"
	"vcheck/internal/models"
)

const (
	outcomeOK    = "OK"
	outcomeError = "ERROR"
)

// UpstreamObserverInterface records one finished call to a platform API.
type UpstreamObserverInterface interface {
	Observe(platform models.Platform, operation string, duration time.Duration, err error)
}

type UpstreamObserver struct {
	logger  Logger
	metrics MetricsProviderInterface
}

func NewUpstreamObserver(logger Logger, metrics MetricsProviderInterface) UpstreamObserverInterface {
	return &UpstreamObserver{logger: logger, metrics: metrics}
}

func (o *UpstreamObserver) Observe(platform models.Platform, operation string, duration time.Duration, err error) {
	outcome := outcomeOf(err)

	fields := map[string]interface{}{
		"platform":   string(platform),
		"operation":  operation,
		"outcome":    outcome,
		"latency_ms": duration.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	o.logger.Eventf(TypeUpstream, fields, "%s %s finished", platform, operation)

	o.metrics.IncUpstreamRequests(platform, operation, outcome)
	o.metrics.ObserveUpstreamDuration(platform, operation, duration)
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeOK
	}
	if reason := models.ReasonOf(err); reason != "" {
		return string(reason)
	}
	return outcomeError
}
