package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCost       = errors.New("model: invalid activity cost")
	ErrDuplicateActivity = errors.New("model: duplicate activity id")
	ErrUnknownActivity   = errors.New("model: unknown activity")
	ErrActivityBlocked   = errors.New("model: activity blocked by time slot conflict")
)

type ActivityEntry struct {
	ID       string
	Name     string
	Cost     int
	TimeSlot string
	Checked  bool
}

func (a ActivityEntry) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: activity id is required")
	}
	if a.Cost < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCost, a.Cost)
	}
	return nil
}

// ParseCost converts a raw cost attribute into a whole-dollar amount.
func ParseCost(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCost, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCost, raw)
	}
	return v, nil
}

type SelectionAggregate struct {
	TotalCost     int
	TotalSelected int
}

func (s SelectionAggregate) CostLabel() string {
	return fmt.Sprintf("Total $%d", s.TotalCost)
}

// Recompute derives the aggregate from the checked entries. It never patches
// a previous aggregate.
func Recompute(entries []ActivityEntry) SelectionAggregate {
	var out SelectionAggregate
	for _, e := range entries {
		if !e.Checked {
			continue
		}
		out.TotalCost += e.Cost
		out.TotalSelected++
	}
	return out
}
