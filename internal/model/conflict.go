package model

import "sort"

// ConflictSet maps an activity id to whether it is blocked.
type ConflictSet map[string]bool

func (c ConflictSet) Blocked(id string) bool {
	return c[id]
}

// BlockedIDs returns the blocked ids in sorted order.
func (c ConflictSet) BlockedIDs() []string {
	out := make([]string, 0, len(c))
	for id, blocked := range c {
		if blocked {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// ResolveConflicts recomputes the blocked state of every entry from scratch.
// An unchecked entry is blocked when another checked entry shares its time
// slot. Checked entries are never blocked. Entries without a time slot never
// conflict.
func ResolveConflicts(entries []ActivityEntry) ConflictSet {
	checkedAt := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Checked && e.TimeSlot != "" {
			checkedAt[e.TimeSlot]++
		}
	}

	out := make(ConflictSet, len(entries))
	for _, e := range entries {
		if e.Checked || e.TimeSlot == "" {
			out[e.ID] = false
			continue
		}
		// e is unchecked, so it is not part of the count for its own slot.
		out[e.ID] = checkedAt[e.TimeSlot] > 0
	}
	return out
}

// ConflictChange is one entry whose blocked state differs between two sets.
type ConflictChange struct {
	ID      string
	Blocked bool
}

// DiffConflicts lists entries whose blocked state changed, in entry order.
func DiffConflicts(entries []ActivityEntry, prev, next ConflictSet) []ConflictChange {
	out := make([]ConflictChange, 0)
	for _, e := range entries {
		if prev.Blocked(e.ID) != next.Blocked(e.ID) {
			out = append(out, ConflictChange{ID: e.ID, Blocked: next.Blocked(e.ID)})
		}
	}
	return out
}
