// Package session assembles and mutates the in-memory study queue: the
// Session Builder draws due and new cards into an ordered queue, and
// the Relearn Controller reinserts poorly-recalled cards later in the
// same queue.
package session

import "github.com/riftbound-tools/riftdrill/internal/domain"

// Session is one study session's queue plus its composition counts.
// The queue is index-addressable because relearn reinsertion inserts at
// a computed offset; sessions are small, so a slice is sufficient.
type Session struct {
	Items    []*domain.SessionItem
	DueCount int
	NewCount int
}

// Len returns the current queue length, including reinsertions.
func (s *Session) Len() int {
	return len(s.Items)
}

// InsertAt inserts an item at index i, shifting later items right.
// An index beyond the end appends.
func (s *Session) InsertAt(i int, item *domain.SessionItem) {
	if i >= len(s.Items) {
		s.Items = append(s.Items, item)
		return
	}
	s.Items = append(s.Items, nil)
	copy(s.Items[i+1:], s.Items[i:])
	s.Items[i] = item
}

// Summary aggregates the answered items for end-of-session display.
type Summary struct {
	Answered int
	Correct  int
}

// Summarize computes the session summary from the answered items.
func (s *Session) Summarize() Summary {
	var sum Summary
	for _, item := range s.Items {
		if !item.Answered {
			continue
		}
		sum.Answered++
		if item.IsCorrect {
			sum.Correct++
		}
	}
	return sum
}
