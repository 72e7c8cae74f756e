package generator

import (
	"testing"
	"time"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name       string
		instant    time.Time
		wantMillis uint64
	}{
		{
			name:       "millisecond instant",
			instant:    time.UnixMilli(1767270896789),
			wantMillis: 1767270896789,
		},
		{
			name:       "sub-millisecond precision truncates",
			instant:    time.Unix(1767270896, 789999999),
			wantMillis: 1767270896789,
		},
		{
			name:       "epoch",
			instant:    time.UnixMilli(0),
			wantMillis: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			id, err := g.At(tt.instant)
			if err != nil {
				t.Fatalf("At(%v) unexpected error: %v", tt.instant, err)
			}
			if got := id.Time(); got != tt.wantMillis {
				t.Errorf("At(%v) timestamp = %d ms, want %d ms", tt.instant, got, tt.wantMillis)
			}
		})
	}
}

func TestAtIsMonotonicWithinMillisecond(t *testing.T) {
	g := New()
	instant := time.UnixMilli(1767270896000)

	prev, err := g.At(instant)
	if err != nil {
		t.Fatalf("At() unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		id, err := g.At(instant)
		if err != nil {
			t.Fatalf("At() unexpected error: %v", err)
		}
		if prev.Compare(id) >= 0 {
			t.Fatalf("At() = %s after %s, want strictly increasing", id, prev)
		}
		if id.Time() != prev.Time() {
			t.Fatalf("At() timestamp changed from %d to %d within batch", prev.Time(), id.Time())
		}
		prev = id
	}
}

func TestNow(t *testing.T) {
	g := New()

	before := time.Now().UnixMilli()
	id, err := g.Now()
	if err != nil {
		t.Fatalf("Now() unexpected error: %v", err)
	}
	after := time.Now().UnixMilli()

	got := int64(id.Time())
	if got < before || got > after {
		t.Errorf("Now() timestamp = %d ms, want between %d and %d", got, before, after)
	}
}
