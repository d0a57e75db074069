package models

import (
	"fmt"
	"testing"
	"time"
)

func TestHistoryAppendsInOrder(t *testing.T) {
	history := NewHistory(8)
	history.Append(EditRecord{Operation: "sharpen"})
	history.Append(EditRecord{Operation: "red_mask"})

	records := history.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Operation != "sharpen" || records[1].Operation != "red_mask" {
		t.Fatalf("unexpected order: %v", records)
	}
}

func TestHistoryDropsOldestWhenFull(t *testing.T) {
	history := NewHistory(3)
	for i := 0; i < 5; i++ {
		history.Append(EditRecord{Operation: fmt.Sprintf("op%d", i)})
	}

	if history.Len() != 3 {
		t.Fatalf("expected 3 records after overflow, got %d", history.Len())
	}
	records := history.Records()
	if records[0].Operation != "op2" {
		t.Fatalf("oldest surviving record should be op2, got %s", records[0].Operation)
	}

	latest, ok := history.Latest()
	if !ok || latest.Operation != "op4" {
		t.Fatalf("latest should be op4, got %v ok=%v", latest, ok)
	}
}

func TestHistoryLatestWhenEmpty(t *testing.T) {
	history := NewHistory(4)
	if _, ok := history.Latest(); ok {
		t.Fatal("Latest on empty history should report ok=false")
	}
}

func TestHistoryAverageDuration(t *testing.T) {
	history := NewHistory(4)
	history.Append(EditRecord{Operation: "a", Duration: 10 * time.Millisecond})
	history.Append(EditRecord{Operation: "b", Duration: 30 * time.Millisecond})

	if got := history.AverageDuration(); got != 20*time.Millisecond {
		t.Fatalf("AverageDuration = %v, want 20ms", got)
	}
}

func TestHistoryMinimumSize(t *testing.T) {
	history := NewHistory(0)
	history.Append(EditRecord{Operation: "a"})
	history.Append(EditRecord{Operation: "b"})
	if history.Len() != 1 {
		t.Fatalf("zero-size history should clamp to 1, got %d", history.Len())
	}
}
