// Package helpqueue implements the in-memory waiting list at the heart of
// the helpdesk service: an ordered collection of outstanding help requests
// keyed by group number, safe for concurrent use by any number of HTTP
// handlers.
//
// Requests are served strictly in arrival order. Each group may hold at most
// one live request at a time; a group that has been served or dismissed is
// free to enqueue again. The queue performs no I/O, keeps no history, and is
// not persisted across restarts.
//
// Example:
//
//	q := helpqueue.New()
//	if err := q.Enqueue(7, 887022804183175188); err != nil {
//		// group 7 is already waiting
//	}
//	group, channel, err := q.Next()
package helpqueue
