// Package watch polls the backend for order changes and records them in
// the local notification inbox.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"restaurant-manager/internal/notification"
	"restaurant-manager/internal/order"
)

// OrderLister is the slice of the order service the watcher needs.
type OrderLister interface {
	List(ctx context.Context, opts order.ListOptions, token string) (*order.ListResult, error)
}

// Recorder is the slice of the notification repository the watcher needs.
type Recorder interface {
	Record(ctx context.Context, n *notification.Notification) (int64, error)
}

// Watcher periodically lists recent orders and records a notification
// for every new order and every status transition it observes.
type Watcher struct {
	orders   OrderLister
	inbox    Recorder
	token    string
	interval time.Duration
	logger   *zap.Logger

	// last seen status per order id
	seen map[string]order.Status
}

// New creates a watcher. interval must be positive.
func New(orders OrderLister, inbox Recorder, token string, interval time.Duration, logger *zap.Logger) (*Watcher, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	return &Watcher{
		orders:   orders,
		inbox:    inbox,
		token:    token,
		interval: interval,
		logger:   logger,
		seen:     make(map[string]order.Status),
	}, nil
}

// Run polls until the context is cancelled. The first poll only primes
// the baseline, so a fresh start does not flood the inbox with every
// existing order.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.poll(ctx, true); err != nil {
		w.logger.Warn("initial poll failed", zap.Error(err))
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopping", zap.Error(ctx.Err()))
			return ctx.Err()
		case <-ticker.C:
			if err := w.poll(ctx, false); err != nil {
				w.logger.Warn("poll failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) poll(ctx context.Context, prime bool) error {
	result, err := w.orders.List(ctx, order.ListOptions{Limit: 50}, w.token)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	for i := range result.Orders {
		o := &result.Orders[i]
		id, err := o.ResolveID()
		if err != nil {
			w.logger.Warn("order without usable id", zap.String("orderNumber", o.OrderNumber))
			continue
		}
		prev, known := w.seen[id]
		w.seen[id] = o.Status
		if prime {
			continue
		}
		switch {
		case !known:
			w.notifyNew(ctx, id, o)
		case prev != o.Status:
			w.notifyTransition(ctx, id, o, prev)
		}
	}
	return nil
}

func (w *Watcher) notifyNew(ctx context.Context, id string, o *order.Order) {
	data, _ := json.Marshal(map[string]string{
		"orderId":     id,
		"orderNumber": o.OrderNumber,
		"status":      string(o.Status),
	})
	_, err := w.inbox.Record(ctx, &notification.Notification{
		Type:     notification.TypeOrder,
		Title:    "New order " + o.OrderNumber,
		Message:  fmt.Sprintf("Order %s received (%s)", o.OrderNumber, o.Status),
		Priority: notification.PriorityHigh,
		Data:     data,
	})
	if err != nil {
		w.logger.Error("failed to record notification", zap.Error(err))
		return
	}
	w.logger.Info("new order",
		zap.String("orderId", id),
		zap.String("orderNumber", o.OrderNumber),
		zap.String("status", string(o.Status)))
}

func (w *Watcher) notifyTransition(ctx context.Context, id string, o *order.Order, prev order.Status) {
	data, _ := json.Marshal(map[string]string{
		"orderId":     id,
		"orderNumber": o.OrderNumber,
		"from":        string(prev),
		"to":          string(o.Status),
	})
	_, err := w.inbox.Record(ctx, &notification.Notification{
		Type:    notification.TypeOrder,
		Title:   "Order " + o.OrderNumber + " " + string(o.Status),
		Message: fmt.Sprintf("Order %s moved from %s to %s", o.OrderNumber, prev, o.Status),
		Data:    data,
	})
	if err != nil {
		w.logger.Error("failed to record notification", zap.Error(err))
		return
	}
	w.logger.Info("order status changed",
		zap.String("orderId", id),
		zap.String("from", string(prev)),
		zap.String("to", string(o.Status)))
}
