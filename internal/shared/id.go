package shared

import (
	"fmt"
	"regexp"

	"restaurant-manager/internal/api"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectID reports whether s is a well-formed 24-character hex identifier.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// ResolveObjectID picks the canonical identifier from a record that may
// expose either field convention (_id or id). Malformed identifiers are
// rejected here, at the ingestion boundary, so a synthetic or placeholder
// id never leaks into a backend call.
func ResolveObjectID(primary, fallback string) (string, error) {
	for _, id := range []string{primary, fallback} {
		if IsObjectID(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("no well-formed identifier in %q / %q", primary, fallback)
}

// GuardObjectID rejects a malformed identifier before any network I/O,
// surfacing the Gateway's invalid-identifier kind so callers branch on it
// the same way they branch on transport failures.
func GuardObjectID(label, id string) error {
	if !IsObjectID(id) {
		return &api.Error{
			Kind:    api.KindInvalidIdentifier,
			Message: fmt.Sprintf("%s %q is not a 24-character hex identifier", label, id),
		}
	}
	return nil
}
