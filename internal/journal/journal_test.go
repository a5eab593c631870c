package journal

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	ctx := context.Background()
	j, err := Open(ctx, filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendAndListRecent(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	if _, err := j.Append(ctx, "m01", KindStarted, 0, "workspace ready"); err != nil {
		t.Fatalf("append started: %v", err)
	}
	if _, err := j.Append(ctx, "m01", KindChecked, 0, "2/4 checkpoints passing"); err != nil {
		t.Fatalf("append checked: %v", err)
	}
	id, err := j.Append(ctx, "m01", KindCompleted, 100, "Apprentice")
	if err != nil {
		t.Fatalf("append completed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated event id")
	}

	events, err := j.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len=%d, want 3", len(events))
	}
	if events[0].Kind != KindCompleted {
		t.Fatalf("newest first violated: %+v", events[0])
	}
	if events[0].XPAwarded != 100 {
		t.Fatalf("xp=%d, want 100", events[0].XPAwarded)
	}
}

func TestListRecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	for i := 0; i < 5; i++ {
		if _, err := j.Append(ctx, "m01", KindChecked, 0, ""); err != nil {
			t.Fatalf("append #%d: %v", i, err)
		}
	}
	events, err := j.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len=%d, want 2", len(events))
	}
}

func TestCountByKind(t *testing.T) {
	ctx := context.Background()
	j := newTestJournal(t)

	if _, err := j.Append(ctx, "m01", KindCompleted, 100, ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := j.Append(ctx, "m02", KindCompleted, 150, ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := j.Append(ctx, "m02", KindStarted, 0, ""); err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := j.CountByKind(ctx, KindCompleted)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("completed=%d, want 2", n)
	}
}
