package models

import (
	"errors"
	"fmt"
)

type FailureReason string

const (
	ReasonUpstreamUnavailable FailureReason = "UPSTREAM_UNAVAILABLE"
	ReasonNoData              FailureReason = "NO_DATA"
	ReasonParseFailure        FailureReason = "PARSE_FAILURE"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNoData              = errors.New("no data")
	ErrParseFailure        = errors.New("parse failure")
	ErrUnsupportedOS       = errors.New("unsupported os selector")
)

// FetchError is the typed failure of a platform adapter call.
type FetchError struct {
	Platform Platform
	Reason   FailureReason
	Err      error
}

func NewFetchError(platform Platform, reason FailureReason, err error) *FetchError {
	return &FetchError{Platform: platform, Reason: reason, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Platform, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Platform, e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrUpstreamUnavailable:
		return e.Reason == ReasonUpstreamUnavailable
	case ErrNoData:
		return e.Reason == ReasonNoData
	case ErrParseFailure:
		return e.Reason == ReasonParseFailure
	}
	return false
}

// ReasonOf extracts the failure reason from err, or "" when err is not a FetchError.
func ReasonOf(err error) FailureReason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

// NotFoundError reports that a platform produced no usable version data.
type NotFoundError struct {
	Platform Platform
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no usable data from %s", e.Platform)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
