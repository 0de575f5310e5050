package store

import (
	"context"
	"fmt"
	"time"
)

// Visitor is a page view keyed by a salted hash of the client IP; raw
// addresses are never stored.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorRetention is how long visitor rows are kept.
const VisitorRetention = 365 * 24 * time.Hour

func (d *DB) TrackVisitor(ctx context.Context, v Visitor) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := d.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("recording visitor: %w", err)
	}
	return nil
}

// CleanupVisitors removes visitor rows recorded before cutoff.
func (d *DB) CleanupVisitors(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	return res.RowsAffected()
}

func (d *DB) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing visitors: %w", err)
	}
	defer rows.Close()

	var out []Visitor
	for rows.Next() {
		var (
			v  Visitor
			ts int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, err
		}
		v.Timestamp = time.Unix(ts, 0)
		out = append(out, v)
	}
	return out, rows.Err()
}
