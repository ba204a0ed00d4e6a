package monitor

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrSourceUnavailable means the listing fetch failed or returned nothing,
	// the cycle is skipped and retried on the next tick.
	ErrSourceUnavailable = errors.New("listing source unavailable")
	// ErrPersistenceFailure means the baseline save failed, the new symbols
	// stay known in memory and the save is retried next cycle.
	ErrPersistenceFailure = errors.New("baseline persistence failure")
	// ErrSinkUnavailable marks a single notification that could not be
	// delivered. The symbol is still recorded as known.
	ErrSinkUnavailable = errors.New("notification sink unavailable")
)

// Status is a read-only view of the watcher for the command facade.
type Status struct {
	KnownCount   int
	PollInterval time.Duration
}

// PairService watches an exchange listing for previously unseen symbols.
type PairService interface {
	// Start loads the persisted baseline and announces the watcher.
	Start(ctx context.Context) error
	// Scan runs one fetch-diff-notify-persist cycle.
	Scan(ctx context.Context) error
	Status() Status
}
