package domain

import "errors"

// Domain errors returned by the public API; check with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("eegsift: invalid configuration")

	// ErrUnreadableFile is returned when the recording file cannot be
	// opened at all. It is the only fatal pipeline condition; every other
	// anomaly is handled by exclusion and a diagnostic.
	ErrUnreadableFile = errors.New("eegsift: unreadable recording file")

	// ErrShortTail indicates the requested marker tail exceeds the file
	// size. Recovered internally by scanning the whole file instead.
	ErrShortTail = errors.New("eegsift: tail longer than file")
)
