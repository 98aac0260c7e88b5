package application

import "errors"

var (
	// ErrDataUnavailable reports that the upstream provider failed or
	// returned unusable data.
	ErrDataUnavailable = errors.New("sun data unavailable")

	// ErrComparisonUnavailable reports that no valid prior-day length
	// exists to compare against.
	ErrComparisonUnavailable = errors.New("comparison unavailable")

	// ErrNoRecipientsConfigured reports an empty recipient list at
	// dispatch time.
	ErrNoRecipientsConfigured = errors.New("no recipients configured")
)
