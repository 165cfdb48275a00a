package model

import "fmt"

// Selection holds the fixed activity collection. Only the checked state of an
// entry changes after construction.
type Selection struct {
	entries []ActivityEntry
	index   map[string]int
}

func NewSelection(entries []ActivityEntry) (*Selection, error) {
	s := &Selection{
		entries: make([]ActivityEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
		if _, dup := s.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateActivity, e.ID)
		}
		s.index[e.ID] = i
		s.entries[i] = e
	}
	return s, nil
}

// Entries returns a copy of the collection in its original order.
func (s *Selection) Entries() []ActivityEntry {
	out := make([]ActivityEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Selection) Entry(id string) (ActivityEntry, bool) {
	i, ok := s.index[id]
	if !ok {
		return ActivityEntry{}, false
	}
	return s.entries[i], true
}

func (s *Selection) Aggregate() SelectionAggregate {
	return Recompute(s.entries)
}

func (s *Selection) Conflicts() ConflictSet {
	return ResolveConflicts(s.entries)
}

// CheckedIDs returns the ids of checked entries in collection order.
func (s *Selection) CheckedIDs() []string {
	out := make([]string, 0)
	for _, e := range s.entries {
		if e.Checked {
			out = append(out, e.ID)
		}
	}
	return out
}

// Toggle sets the checked state of one entry. Checking an entry that is
// currently blocked is rejected and leaves the collection untouched.
func (s *Selection) Toggle(id string, checked bool) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, id)
	}
	if checked && !s.entries[i].Checked && s.Conflicts().Blocked(id) {
		return fmt.Errorf("%w: %q", ErrActivityBlocked, id)
	}
	s.entries[i].Checked = checked
	return nil
}
