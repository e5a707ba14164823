package geo

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the delay before a suggestion query is sent to the
// geocoder, matching keystroke cadence in the search box.
const DefaultDebounce = 300 * time.Millisecond

// Suggester debounces place-name lookups for search suggestions. Each Query
// supersedes any pending or in-flight lookup: a stale response that arrives
// after a newer query has been issued is discarded, so delivery order follows
// query recency rather than arrival order.
type Suggester struct {
	geocoder Geocoder
	delay    time.Duration
	limit    int

	mu    sync.Mutex
	seq   uint64
	timer *time.Timer
}

// NewSuggester builds a suggester over the given geocoder. A non-positive
// delay falls back to DefaultDebounce.
func NewSuggester(geocoder Geocoder, delay time.Duration, limit int) *Suggester {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if limit <= 0 {
		limit = 5
	}
	return &Suggester{geocoder: geocoder, delay: delay, limit: limit}
}

// Query schedules a suggestion lookup and delivers the result asynchronously.
// A blank query clears suggestions without touching the geocoder.
func (s *Suggester) Query(ctx context.Context, query string, deliver func([]Place, error)) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if !s.isCurrent(seq) {
			return
		}
		if strings.TrimSpace(query) == "" {
			deliver(nil, nil)
			return
		}
		places, err := s.geocoder.Search(ctx, query, s.limit)
		if !s.isCurrent(seq) {
			return
		}
		deliver(places, err)
	})
	s.mu.Unlock()
}

func (s *Suggester) isCurrent(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}
