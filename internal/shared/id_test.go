package shared

import (
	"testing"

	"restaurant-manager/internal/api"
)

func TestIsObjectID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"lowercase hex", "68b1c2d3e4f5a6b7c8d9e0f1", true},
		{"uppercase hex", "68B1C2D3E4F5A6B7C8D9E0F1", true},
		{"too short", "68b1c2d3e4f5a6b7c8d9e0f", false},
		{"too long", "68b1c2d3e4f5a6b7c8d9e0f12", false},
		{"non-hex", "68b1c2d3e4f5a6b7c8d9e0zz", false},
		{"empty", "", false},
		{"placeholder", "undefined", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsObjectID(tt.id); got != tt.want {
				t.Errorf("IsObjectID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestResolveObjectID(t *testing.T) {
	const good = "68b1c2d3e4f5a6b7c8d9e0f1"
	const other = "aaaaaaaaaaaaaaaaaaaaaaaa"

	t.Run("primary wins", func(t *testing.T) {
		id, err := ResolveObjectID(good, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != good {
			t.Errorf("got %q, want %q", id, good)
		}
	})

	t.Run("falls back to secondary", func(t *testing.T) {
		id, err := ResolveObjectID("", good)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != good {
			t.Errorf("got %q, want %q", id, good)
		}
	})

	t.Run("both malformed", func(t *testing.T) {
		if _, err := ResolveObjectID("nope", "also-nope"); err == nil {
			t.Error("expected error for two malformed ids")
		}
	})
}

func TestGuardObjectID(t *testing.T) {
	if err := GuardObjectID("plan id", "68b1c2d3e4f5a6b7c8d9e0f1"); err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}

	err := GuardObjectID("plan id", "bogus")
	if err == nil {
		t.Fatal("expected error for malformed id")
	}
	if api.KindOf(err) != api.KindInvalidIdentifier {
		t.Errorf("got kind %q, want %q", api.KindOf(err), api.KindInvalidIdentifier)
	}
}
