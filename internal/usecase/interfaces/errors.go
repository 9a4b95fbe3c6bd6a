package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a guarded write's
// condition did not hold (status changed since read, key already taken,
// reservation held by someone else). Usecases re-read to decide between
// not-found, concurrent-modification and invalid-state outcomes.
var ErrConditionFailed = errors.New("conditional write failed")
