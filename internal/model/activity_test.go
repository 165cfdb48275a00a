package model

import (
	"errors"
	"testing"
)

func sampleEntries() []ActivityEntry {
	return []ActivityEntry{
		{ID: "all", Name: "Main Conference", Cost: 200},
		{ID: "js-frameworks", Name: "JavaScript Frameworks Workshop", Cost: 100, TimeSlot: "Tuesday 9am-12pm"},
		{ID: "js-libs", Name: "JavaScript Libraries Workshop", Cost: 100, TimeSlot: "Tuesday 1pm-4pm"},
		{ID: "express", Name: "Express Workshop", Cost: 100, TimeSlot: "Tuesday 9am-12pm"},
		{ID: "node", Name: "Node.js Workshop", Cost: 100, TimeSlot: "Tuesday 1pm-4pm"},
		{ID: "build-tools", Name: "Build tools Workshop", Cost: 100, TimeSlot: "Wednesday 9am-12pm"},
	}
}

func TestRecomputeSumsCheckedEntries(t *testing.T) {
	entries := sampleEntries()
	if got := Recompute(entries); got != (SelectionAggregate{}) {
		t.Fatalf("expected empty aggregate, got %+v", got)
	}

	entries[0].Checked = true
	entries[2].Checked = true
	got := Recompute(entries)
	if got.TotalCost != 300 || got.TotalSelected != 2 {
		t.Fatalf("unexpected aggregate: %+v", got)
	}
	if again := Recompute(entries); again != got {
		t.Fatalf("recompute not idempotent: %+v vs %+v", again, got)
	}
	if got.CostLabel() != "Total $300" {
		t.Fatalf("unexpected cost label: %q", got.CostLabel())
	}
}

func TestParseCost(t *testing.T) {
	v, err := ParseCost(" 100 ")
	if err != nil || v != 100 {
		t.Fatalf("parse cost = %d, %v", v, err)
	}
	for _, raw := range []string{"", "abc", "12.5", "-1"} {
		if _, err := ParseCost(raw); !errors.Is(err, ErrInvalidCost) {
			t.Fatalf("parse %q: expected ErrInvalidCost, got %v", raw, err)
		}
	}
}

func TestActivityEntryValidate(t *testing.T) {
	if err := (ActivityEntry{ID: "a", Cost: 0}).Validate(); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
	if err := (ActivityEntry{ID: " "}).Validate(); err == nil {
		t.Fatal("expected missing id error")
	}
	if err := (ActivityEntry{ID: "a", Cost: -5}).Validate(); !errors.Is(err, ErrInvalidCost) {
		t.Fatalf("expected ErrInvalidCost, got %v", err)
	}
}
