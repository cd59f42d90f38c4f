package activity

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "activity.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{At: base, Actor: "ann@example.com", Action: "created", Resource: "blog", ResourceID: 1, Summary: "Hello"},
		{At: base.Add(time.Minute), Actor: "ann@example.com", Action: "deleted", Resource: "career", ResourceID: 7},
		{At: base.Add(2 * time.Minute), Actor: "bob@example.com", Action: "dismissed", Resource: "contact", ResourceID: 3},
	}
	for _, e := range entries {
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Recent) = %d, want 2", len(got))
	}
	if got[0].Action != "dismissed" || got[1].Action != "deleted" {
		t.Errorf("Recent order = %q, %q; want dismissed, deleted", got[0].Action, got[1].Action)
	}
	if !got[0].At.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("At = %v, want %v", got[0].At, base.Add(2*time.Minute))
	}
	if got[1].ResourceID != 7 || got[1].Resource != "career" {
		t.Errorf("entry = %+v", got[1])
	}
}

func TestRecordStampsTime(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	if err := s.Record(ctx, Entry{Actor: "a", Action: "updated", Resource: "blog"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 1 || got[0].At.Before(before) {
		t.Fatalf("Recent = %+v, want one entry stamped after %v", got, before)
	}
}

func TestPrune(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	old := time.Now().Add(-48 * time.Hour)

	s.Record(ctx, Entry{At: old, Actor: "a", Action: "created", Resource: "blog"})
	s.Record(ctx, Entry{Actor: "a", Action: "created", Resource: "blog"})

	n, err := s.Prune(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Prune removed %d, want 1", n)
	}
	got, _ := s.Recent(ctx, 10)
	if len(got) != 1 {
		t.Errorf("len(Recent) = %d after prune, want 1", len(got))
	}
}
