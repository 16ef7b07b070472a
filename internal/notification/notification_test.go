package notification

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"restaurant-manager/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestRecordAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	data, _ := json.Marshal(map[string]string{"orderId": "68b1c2d3e4f5a6b7c8d9e0f1"})
	id, err := repo.Record(ctx, &Notification{
		Type:    TypeOrder,
		Title:   "New order ORD-1042",
		Message: "Order ORD-1042 received (pending)",
		Data:    data,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero id")
	}

	list, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want 1", len(list))
	}
	n := list[0]
	if n.Priority != PriorityNormal {
		t.Errorf("Priority = %q, want default %q", n.Priority, PriorityNormal)
	}
	if n.IsRead {
		t.Error("new notification should be unread")
	}
	var decoded map[string]string
	if err := json.Unmarshal(n.Data, &decoded); err != nil {
		t.Fatalf("data did not survive storage: %v", err)
	}
	if decoded["orderId"] != "68b1c2d3e4f5a6b7c8d9e0f1" {
		t.Errorf("data payload = %v", decoded)
	}
}

func TestListFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	orderID, _ := repo.Record(ctx, &Notification{Type: TypeOrder, Title: "a", Message: "a"})
	if _, err := repo.Record(ctx, &Notification{Type: TypeSubscription, Title: "b", Message: "b"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := repo.MarkRead(ctx, orderID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	byType, err := repo.List(ctx, Filter{Type: TypeOrder})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byType) != 1 || byType[0].Type != TypeOrder {
		t.Errorf("type filter returned %+v", byType)
	}

	unread, err := repo.List(ctx, Filter{UnreadOnly: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(unread) != 1 || unread[0].Title != "b" {
		t.Errorf("unread filter returned %+v", unread)
	}

	limited, err := repo.List(ctx, Filter{Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit filter returned %d rows", len(limited))
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.Record(ctx, &Notification{Type: TypeOrder, Title: "a", Message: "a"})
	if _, err := repo.Record(ctx, &Notification{Type: TypeOrder, Title: "b", Message: "b"}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	count, err := repo.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("UnreadCount = %d, want 2", count)
	}

	if err := repo.MarkRead(ctx, id); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if count, _ = repo.UnreadCount(ctx); count != 1 {
		t.Errorf("UnreadCount after MarkRead = %d, want 1", count)
	}

	if err := repo.MarkRead(ctx, 9999); err == nil {
		t.Error("marking an unknown id should fail")
	}

	if err := repo.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead failed: %v", err)
	}
	if count, _ = repo.UnreadCount(ctx); count != 0 {
		t.Errorf("UnreadCount after MarkAllRead = %d, want 0", count)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, _ := repo.Record(ctx, &Notification{Type: TypeOrder, Title: "a", Message: "a"})
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("got %d notifications after delete, want 0", len(list))
	}
}
