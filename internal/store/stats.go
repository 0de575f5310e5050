package store

import (
	"context"
	"time"
)

// Stats summarises the admin dashboard.
type Stats struct {
	TotalVisitors    int64     `json:"total_visitors"`
	UniqueVisitors   int64     `json:"unique_visitors"`
	VisitorsToday    int64     `json:"visitors_today"`
	VisitorsThisWeek int64     `json:"visitors_this_week"`
	TotalMessages    int64     `json:"total_messages"`
	SentMessages     int64     `json:"sent_messages"`
	FailedMessages   int64     `json:"failed_messages"`
	RecentMessages   []Message `json:"recent_messages"`
	RecentVisitors   []Visitor `json:"recent_visitors"`
}

// Stats gathers dashboard numbers relative to now.
func (d *DB) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo.Unix()}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.SentMessages, `SELECT COUNT(*) FROM messages WHERE status = ?`, []any{MessageSent}},
		{&stats.FailedMessages, `SELECT COUNT(*) FROM messages WHERE status = ?`, []any{MessageFailed}},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, err
		}
	}

	var err error
	if stats.RecentMessages, err = d.RecentMessages(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = d.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
