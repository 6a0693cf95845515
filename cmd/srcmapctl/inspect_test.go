package main

import "testing"

func TestParsePositionsValid(t *testing.T) {
	positions, err := parsePositions([]string{"1:0", "2:5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if positions[0] != [2]int{1, 0} {
		t.Errorf("positions[0] = %v, want [1 0]", positions[0])
	}
	if positions[1] != [2]int{2, 5} {
		t.Errorf("positions[1] = %v, want [2 5]", positions[1])
	}
}

func TestParsePositionsRejectsMalformed(t *testing.T) {
	if _, err := parsePositions([]string{"noColon"}); err == nil {
		t.Error("expected error for position with no colon")
	}
	if _, err := parsePositions([]string{"x:0"}); err == nil {
		t.Error("expected error for non-numeric line")
	}
	if _, err := parsePositions([]string{"1:y"}); err == nil {
		t.Error("expected error for non-numeric column")
	}
}

func TestParsePositionsEmpty(t *testing.T) {
	positions, err := parsePositions(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positions) != 0 {
		t.Errorf("expected no positions, got %d", len(positions))
	}
}
