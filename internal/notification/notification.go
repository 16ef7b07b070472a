// Package notification keeps a local inbox of events worth surfacing to
// the restaurant operator, such as order status changes observed by the
// watcher. Entries live in the SQLite database so they survive restarts.
package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Notification types.
const (
	TypeOrder        = "order"
	TypeSubscription = "subscription"
)

// Priorities.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Notification is one inbox entry. Data carries type-specific payload
// such as the order id and the observed status transition.
type Notification struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Priority  string          `json:"priority"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Repository stores notifications.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an open database handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts a notification and returns its id.
func (r *Repository) Record(ctx context.Context, n *Notification) (int64, error) {
	if n.Priority == "" {
		n.Priority = PriorityNormal
	}
	data := n.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (type, title, message, priority, data) VALUES (?, ?, ?, ?, ?)`,
		n.Type, n.Title, n.Message, n.Priority, string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to insert notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get notification id: %w", err)
	}
	return id, nil
}

// Filter narrows a listing. Zero values mean no restriction.
type Filter struct {
	Type       string
	UnreadOnly bool
	Limit      int
}

// List returns notifications newest first.
func (r *Repository) List(ctx context.Context, f Filter) ([]Notification, error) {
	query := `SELECT id, type, title, message, priority, data, is_read, created_at FROM notifications`
	var args []any
	var where []string
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.UnreadOnly {
		where = append(where, "is_read = 0")
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		var data string
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Priority, &data, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.Data = json.RawMessage(data)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one notification as read.
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("notification %d not found", id)
	}
	return nil
}

// MarkAllRead flags every unread notification as read.
func (r *Repository) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE is_read = 0`); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// Delete removes a notification.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// UnreadCount returns how many notifications are unread.
func (r *Repository) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE is_read = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
