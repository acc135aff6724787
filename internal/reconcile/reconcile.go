// Package reconcile implements the client side of the engagement
// reconciliation contract.
//
// A client may flip its local liked/shared/followed state and adjust the
// visible count before the server responds (an optimistic apply). The server
// response is always authoritative: on success the client replaces its local
// guess with the returned state and count, and on failure it reverts to the
// exact pre-action snapshot. Optimism is a latency hint only; client-side
// count arithmetic is never trusted, because concurrent actions by other
// users make the local guess drift.
package reconcile

// State is the client-visible engagement state for one toggleable edge:
// the viewer's flag plus the displayed count.
type State struct {
	Active bool
	Count  int64
}

// Toggle tracks one in-flight optimistic toggle. Zero value is not usable;
// obtain one from Begin.
type Toggle struct {
	current  *State
	snapshot State
	settled  bool
}

// Begin snapshots the pre-action state and applies the optimistic flip:
// the flag inverts and the count moves by one in the corresponding
// direction. The snapshot is taken before the flip so a revert restores it
// exactly.
func Begin(s *State) *Toggle {
	t := &Toggle{current: s, snapshot: *s}
	if s.Active {
		s.Active = false
		s.Count--
	} else {
		s.Active = true
		s.Count++
	}
	return t
}

// Commit replaces the local guess with the server's authoritative response.
// The optimistic values are discarded even when they happen to match.
func (t *Toggle) Commit(authoritative State) {
	if t.settled {
		return
	}
	*t.current = authoritative
	t.settled = true
}

// Rollback restores the exact pre-action snapshot. Used when the request
// fails or never reaches the server.
func (t *Toggle) Rollback() {
	if t.settled {
		return
	}
	*t.current = t.snapshot
	t.settled = true
}

// Settled reports whether the toggle has been committed or rolled back.
func (t *Toggle) Settled() bool {
	return t.settled
}
