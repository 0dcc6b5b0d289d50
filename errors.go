package robotdb

import "errors"

// Storage failures are classified into four kinds so internal layers and
// tests can distinguish them with errors.Is. Public operations log the
// classified error and collapse it to a sentinel result; none of these ever
// escape a public call.
var (
	ErrStorageUnavailable = errors.New("robotdb: storage unavailable")
	ErrSchema             = errors.New("robotdb: schema initialization failed")
	ErrWriteFailed        = errors.New("robotdb: write failed")
	ErrQueryFailed        = errors.New("robotdb: query failed")
)
