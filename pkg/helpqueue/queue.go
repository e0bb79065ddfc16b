package helpqueue

import (
	"fmt"
	"slices"
	"sync"
)

// Group identifies a requesting team. Unique among live entries only; the
// same group may enqueue again after being served or dismissed.
type Group uint16

// Channel is an opaque voice-channel handle. The queue carries it through
// unchanged and never interprets it.
type Channel uint64

// entry is a live help request. The rank establishes serving order and is
// never reused, so gaps appear as entries are removed; only relative order
// matters.
type entry struct {
	channel Channel
	rank    uint64
}

// Queue is a concurrency-safe help queue with FIFO-by-arrival semantics.
// The zero value is not usable; use New.
type Queue struct {
	mu        sync.RWMutex
	entries   map[Group]entry
	lastRank  uint64
	corrupted bool
}

// New creates an empty help queue. It takes no configuration and is intended
// to live for the process lifetime, shared across all callers.
func New() *Queue {
	return &Queue{entries: make(map[Group]entry)}
}

// Enqueue inserts a help request for the group. The rank assignment,
// duplicate check, and insert all happen under one exclusive critical
// section so concurrent enqueues can never interleave inconsistently.
// Returns ErrDuplicateRequest if the group already has a live request.
func (q *Queue) Enqueue(group Group, channel Channel) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.corrupted {
		return ErrCorrupted
	}
	defer q.guard()

	if _, exists := q.entries[group]; exists {
		return fmt.Errorf("%w: group %d", ErrDuplicateRequest, group)
	}
	q.lastRank++
	q.entries[group] = entry{channel: channel, rank: q.lastRank}
	return nil
}

// Next removes and returns the longest-waiting request. Ranks among live
// entries are strictly ordered, so the minimum is unique by construction.
// Returns ErrEmptyQueue if nothing is waiting.
func (q *Queue) Next() (Group, Channel, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.corrupted {
		return 0, 0, ErrCorrupted
	}
	defer q.guard()

	var (
		oldest Group
		best   entry
		found  bool
	)
	for group, e := range q.entries {
		if !found || e.rank < best.rank {
			oldest, best, found = group, e, true
		}
	}
	if !found {
		return 0, 0, ErrEmptyQueue
	}
	delete(q.entries, oldest)
	return oldest, best.channel, nil
}

// Dismiss withdraws the group's request regardless of its position and
// returns the associated channel. Returns ErrNotFound if the group has no
// live request.
func (q *Queue) Dismiss(group Group) (Channel, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.corrupted {
		return 0, ErrCorrupted
	}
	defer q.guard()

	e, ok := q.entries[group]
	if !ok {
		return 0, fmt.Errorf("%w: group %d", ErrNotFound, group)
	}
	delete(q.entries, group)
	return e.channel, nil
}

// Clear removes all live requests. Idempotent on an empty queue.
func (q *Queue) Clear() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.corrupted {
		return ErrCorrupted
	}
	defer q.guard()

	clear(q.entries)
	return nil
}

// Len reports the number of live requests.
func (q *Queue) Len() (int, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.corrupted {
		return 0, ErrCorrupted
	}
	return len(q.entries), nil
}

// IsEmpty reports whether the queue has no live requests.
func (q *Queue) IsEmpty() (bool, error) {
	n, err := q.Len()
	return n == 0, err
}

// Sorted returns the live groups ordered oldest-first. The snapshot is taken
// in one shared critical section; the sort runs after the lock is released,
// so later mutations never bleed into the result.
func (q *Queue) Sorted() ([]Group, error) {
	q.mu.RLock()
	if q.corrupted {
		q.mu.RUnlock()
		return nil, ErrCorrupted
	}
	type ranked struct {
		group Group
		rank  uint64
	}
	snapshot := make([]ranked, 0, len(q.entries))
	for group, e := range q.entries {
		snapshot = append(snapshot, ranked{group: group, rank: e.rank})
	}
	q.mu.RUnlock()

	slices.SortFunc(snapshot, func(a, b ranked) int {
		switch {
		case a.rank < b.rank:
			return -1
		case a.rank > b.rank:
			return 1
		default:
			return 0
		}
	})

	groups := make([]Group, len(snapshot))
	for i, r := range snapshot {
		groups[i] = r.group
	}
	return groups, nil
}

// Reset discards all state, including the corruption flag. It is the only
// way back to a usable queue after ErrCorrupted has been observed.
func (q *Queue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = make(map[Group]entry)
	q.lastRank = 0
	q.corrupted = false
}

// guard runs deferred inside every mutation, before the mutex is released.
// A panic mid-mutation marks the queue corrupted so every later operation
// fails instead of proceeding on inconsistent state.
func (q *Queue) guard() {
	if r := recover(); r != nil {
		q.corrupted = true
		panic(r)
	}
}
