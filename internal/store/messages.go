package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Message statuses.
const (
	MessagePending = "pending"
	MessageSent    = "sent"
	MessageFailed  = "failed"
)

// Message is one contact form submission and the outcome of forwarding it.
type Message struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Body      string     `json:"body"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

// RecordMessage stores a new pending submission.
func (d *DB) RecordMessage(ctx context.Context, m Message) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	_, err := d.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, body, sent_date, sent_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Name, m.Email, m.Body, m.Date, m.Time, MessagePending, m.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("recording message %s: %w", m.ID, err)
	}
	return nil
}

// SettleMessage marks a submission sent, or failed with sendErr.
func (d *DB) SettleMessage(ctx context.Context, id string, sendErr error, at time.Time) error {
	status, errText := MessageSent, ""
	if sendErr != nil {
		status, errText = MessageFailed, sendErr.Error()
	}
	res, err := d.ExecContext(ctx, `
		UPDATE messages SET status = ?, error = ?, settled_at = ? WHERE id = ?
	`, status, errText, at.Unix(), id)
	if err != nil {
		return fmt.Errorf("settling message %s: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetMessage returns one submission.
func (d *DB) GetMessage(ctx context.Context, id string) (*Message, error) {
	row := d.QueryRowContext(ctx, messageColumns+` WHERE id = ?`, id)
	m, err := scanMessage(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return m, err
}

// RecentMessages returns the newest submissions first.
func (d *DB) RecentMessages(ctx context.Context, limit int) ([]Message, error) {
	rows, err := d.QueryContext(ctx, messageColumns+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

const messageColumns = `
	SELECT id, name, email, body, sent_date, sent_time, status, error, created_at, settled_at
	FROM messages`

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (*Message, error) {
	var (
		m       Message
		created int64
		settled sql.NullInt64
	)
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Date, &m.Time, &m.Status, &m.Error, &created, &settled); err != nil {
		return nil, err
	}
	m.CreatedAt = time.Unix(created, 0)
	if settled.Valid {
		t := time.Unix(settled.Int64, 0)
		m.SettledAt = &t
	}
	return &m, nil
}
