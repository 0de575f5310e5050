package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestMigrateIdempotent(t *testing.T) {
	d := openTest(t)
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
	for _, table := range []string{"messages", "visitors"} {
		var count int
		if err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()
	if d.Path() != path {
		t.Errorf("Path() = %q", d.Path())
	}
}

func TestMessageLifecycle(t *testing.T) {
	d := openTest(t)
	ctx := context.Background()
	created := time.Unix(1_700_000_000, 0)

	m := Message{ID: "m1", Name: "Ada", Email: "ada@example.com", Body: "Hi", Date: "3/7/2025", Time: "2:05:09 PM", CreatedAt: created}
	if err := d.RecordMessage(ctx, m); err != nil {
		t.Fatalf("RecordMessage: %v", err)
	}

	got, err := d.GetMessage(ctx, "m1")
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if got.Status != MessagePending || got.SettledAt != nil || !got.CreatedAt.Equal(created) {
		t.Errorf("pending message = %+v", got)
	}

	settled := created.Add(time.Second)
	if err := d.SettleMessage(ctx, "m1", errors.New("Invalid key"), settled); err != nil {
		t.Fatalf("SettleMessage: %v", err)
	}
	got, _ = d.GetMessage(ctx, "m1")
	if got.Status != MessageFailed || got.Error != "Invalid key" || got.SettledAt == nil || !got.SettledAt.Equal(settled) {
		t.Errorf("settled message = %+v", got)
	}

	if err := d.SettleMessage(ctx, "missing", nil, settled); !errors.Is(err, ErrNotFound) {
		t.Errorf("SettleMessage(missing) = %v, want ErrNotFound", err)
	}
	if _, err := d.GetMessage(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMessage(missing) = %v, want ErrNotFound", err)
	}
}

func TestRecentMessagesNewestFirst(t *testing.T) {
	d := openTest(t)
	ctx := context.Background()
	base := time.Unix(1_700_000_000, 0)
	for i, id := range []string{"a", "b", "c"} {
		m := Message{ID: id, Name: "n", Email: "e@x.io", Body: "b", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := d.RecordMessage(ctx, m); err != nil {
			t.Fatal(err)
		}
	}
	got, err := d.RecentMessages(ctx, 2)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("RecentMessages = %+v", got)
	}
}

func TestVisitorsAndStats(t *testing.T) {
	d := openTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	visits := []Visitor{
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "ccc", Path: "/", Timestamp: now.Add(-400 * 24 * time.Hour)},
	}
	for _, v := range visits {
		if err := d.TrackVisitor(ctx, v); err != nil {
			t.Fatalf("TrackVisitor: %v", err)
		}
	}
	d.RecordMessage(ctx, Message{ID: "ok", Name: "n", Email: "e@x.io", Body: "b"})
	d.SettleMessage(ctx, "ok", nil, now)
	d.RecordMessage(ctx, Message{ID: "bad", Name: "n", Email: "e@x.io", Body: "b"})
	d.SettleMessage(ctx, "bad", errors.New("nope"), now)

	stats, err := d.Stats(ctx, now)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalVisitors != 4 || stats.UniqueVisitors != 3 {
		t.Errorf("visitors = %d total, %d unique", stats.TotalVisitors, stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 || stats.VisitorsThisWeek != 3 {
		t.Errorf("today = %d, week = %d", stats.VisitorsToday, stats.VisitorsThisWeek)
	}
	if stats.TotalMessages != 2 || stats.SentMessages != 1 || stats.FailedMessages != 1 {
		t.Errorf("messages = %+v", stats)
	}

	removed, err := d.CleanupVisitors(ctx, now.Add(-VisitorRetention))
	if err != nil {
		t.Fatalf("CleanupVisitors: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}
