package fork

import "errors"

var (
	ErrFutureTimestamp     = errors.New("fork: branch timestamp is too far in the future")
	ErrPastTimestamp       = errors.New("fork: branch timestamp is too far in the past")
	ErrEquivocationDetected = errors.New("fork: watcher equivocation detected")
)
