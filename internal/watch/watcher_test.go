package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"restaurant-manager/internal/notification"
	"restaurant-manager/internal/order"
)

type fakeLister struct {
	orders []order.Order
}

func (f *fakeLister) List(ctx context.Context, opts order.ListOptions, token string) (*order.ListResult, error) {
	return &order.ListResult{Orders: f.orders}, nil
}

type fakeInbox struct {
	recorded []notification.Notification
}

func (f *fakeInbox) Record(ctx context.Context, n *notification.Notification) (int64, error) {
	f.recorded = append(f.recorded, *n)
	return int64(len(f.recorded)), nil
}

func newTestWatcher(t *testing.T, lister *fakeLister, inbox *fakeInbox) *Watcher {
	t.Helper()
	w, err := New(lister, inbox, "tok", time.Minute, zap.NewNop())
	require.NoError(t, err)
	return w
}

func TestNewRejectsNonPositiveInterval(t *testing.T) {
	_, err := New(&fakeLister{}, &fakeInbox{}, "tok", 0, zap.NewNop())
	assert.Error(t, err)
}

func TestPrimingPollStaysQuiet(t *testing.T) {
	lister := &fakeLister{orders: []order.Order{
		{ID: "68b1c2d3e4f5a6b7c8d9e0f1", OrderNumber: "ORD-1", Status: order.StatusPending},
	}}
	inbox := &fakeInbox{}
	w := newTestWatcher(t, lister, inbox)

	require.NoError(t, w.poll(context.Background(), true))
	assert.Empty(t, inbox.recorded, "existing orders must not flood the inbox on startup")
}

func TestNewOrderIsRecorded(t *testing.T) {
	lister := &fakeLister{}
	inbox := &fakeInbox{}
	w := newTestWatcher(t, lister, inbox)
	require.NoError(t, w.poll(context.Background(), true))

	lister.orders = []order.Order{
		{ID: "68b1c2d3e4f5a6b7c8d9e0f1", OrderNumber: "ORD-2", Status: order.StatusPending},
	}
	require.NoError(t, w.poll(context.Background(), false))

	require.Len(t, inbox.recorded, 1)
	n := inbox.recorded[0]
	assert.Equal(t, notification.TypeOrder, n.Type)
	assert.Equal(t, notification.PriorityHigh, n.Priority)
	assert.Contains(t, n.Title, "ORD-2")
}

func TestStatusTransitionIsRecordedOnce(t *testing.T) {
	lister := &fakeLister{orders: []order.Order{
		{ID: "68b1c2d3e4f5a6b7c8d9e0f1", OrderNumber: "ORD-3", Status: order.StatusPending},
	}}
	inbox := &fakeInbox{}
	w := newTestWatcher(t, lister, inbox)
	require.NoError(t, w.poll(context.Background(), true))

	lister.orders[0].Status = order.StatusPreparing
	require.NoError(t, w.poll(context.Background(), false))
	require.Len(t, inbox.recorded, 1)
	assert.Contains(t, inbox.recorded[0].Message, "pending")
	assert.Contains(t, inbox.recorded[0].Message, "preparing")

	// A poll with no change records nothing further.
	require.NoError(t, w.poll(context.Background(), false))
	assert.Len(t, inbox.recorded, 1)
}

func TestOrderWithoutIDIsSkipped(t *testing.T) {
	lister := &fakeLister{}
	inbox := &fakeInbox{}
	w := newTestWatcher(t, lister, inbox)
	require.NoError(t, w.poll(context.Background(), true))

	lister.orders = []order.Order{{OrderNumber: "ORD-4", Status: order.StatusPending}}
	require.NoError(t, w.poll(context.Background(), false))
	assert.Empty(t, inbox.recorded)
}

func TestRunStopsOnCancel(t *testing.T) {
	w := newTestWatcher(t, &fakeLister{}, &fakeInbox{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}
