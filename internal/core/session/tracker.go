package session

import (
	"errors"
	"fmt"
	"time"
)

// ErrPersistence indicates the backing store failed a read or write. The
// tracker never retries; a missed increment is not safety-critical, so the
// caller may retry or ignore.
var ErrPersistence = errors.New("session store unavailable")

// Store is the minimal durable key-value surface the tracker needs. Missing
// keys must read as zero values with a nil error. Any implementation (file,
// embedded KV store, platform settings API) satisfies the contract.
type Store interface {
	GetString(key string) (string, error)
	SetString(key, value string) error
	GetInt(key string) (int, error)
	SetInt(key string, value int) error
}

const (
	keyCount   = "sessions.count"
	keyLastDay = "sessions.last_day"

	dayLayout = "2006-01-02"
)

// Tracker counts completed meditation sessions for the current calendar day.
// The stored count is only meaningful together with the stored day marker:
// once the day changes, the old count reads as zero.
type Tracker struct {
	store Store
}

// NewTracker creates a tracker over the given store.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// TodayCount returns the number of sessions completed on the calendar day of
// now. Rollover is applied lazily: a stale stored day reads as zero without
// mutating the store.
func (tracker *Tracker) TodayCount(now time.Time) (int, error) {
	lastDay, err := tracker.store.GetString(keyLastDay)
	if err != nil {
		return 0, fmt.Errorf("%w: read last day: %v", ErrPersistence, err)
	}
	if lastDay != now.Format(dayLayout) {
		return 0, nil
	}

	count, err := tracker.store.GetInt(keyCount)
	if err != nil {
		return 0, fmt.Errorf("%w: read count: %v", ErrPersistence, err)
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}

// RecordCompletion registers one finished countdown run and returns the new
// daily count. A day rollover discards the prior count before incrementing.
// Not idempotent: the caller must invoke it exactly once per genuinely
// completed run, which the timer's single-fire expiry contract guarantees.
func (tracker *Tracker) RecordCompletion(now time.Time) (int, error) {
	count, err := tracker.TodayCount(now)
	if err != nil {
		return 0, err
	}
	count++

	if err := tracker.store.SetInt(keyCount, count); err != nil {
		return 0, fmt.Errorf("%w: write count: %v", ErrPersistence, err)
	}
	if err := tracker.store.SetString(keyLastDay, now.Format(dayLayout)); err != nil {
		return 0, fmt.Errorf("%w: write last day: %v", ErrPersistence, err)
	}
	return count, nil
}
