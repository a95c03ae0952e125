package attendance

import (
	"sync"
	"time"
)

const dateKeyLayout = "2006-01-02"

// HolidayCache is an in-process snapshot of the holiday calendar. The
// reconciliation job refreshes it at the start of every run; when a refresh
// fails the previous snapshot keeps serving, so a flaky calendar read never
// flips a holiday into a working day mid-quarter.
type HolidayCache struct {
	mu     sync.RWMutex
	dates  map[string]struct{}
	loaded bool
}

func NewHolidayCache() *HolidayCache {
	return &HolidayCache{
		dates: make(map[string]struct{}),
	}
}

// Store replaces the cached snapshot with the given dates.
func (c *HolidayCache) Store(dates []time.Time) {
	next := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		next[d.Format(dateKeyLayout)] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dates = next
	c.loaded = true
}

// Contains reports whether the given date is a holiday. Only the calendar
// date matters; the time of day and zone offset of the instant are ignored.
func (c *HolidayCache) Contains(date time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.dates[date.Format(dateKeyLayout)]
	return ok
}

// Ready reports whether the cache has been populated at least once.
func (c *HolidayCache) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Len returns the number of cached holiday dates.
func (c *HolidayCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.dates)
}
