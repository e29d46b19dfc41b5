package model

import "errors"

var (
	// ErrNotFound reports that a requested record does not exist. Callers
	// decide the fallback; it is not, by itself, a fault.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound reports a visited-set or profile query against an
	// unknown user. Distinct from a user with an empty visit history.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable reports that the backing store is unreachable.
	// The core propagates it without retrying.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRecommendationFailed wraps unexpected faults during a
	// recommendation computation.
	ErrRecommendationFailed = errors.New("recommendation failed")

	// ErrImportFailed wraps faults during a search-result import batch.
	ErrImportFailed = errors.New("import failed")
)
