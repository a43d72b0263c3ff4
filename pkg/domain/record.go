package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the key under which the store returns a record's identifier.
const IDField = "_id"

// Record is a document as returned by the store. The console treats it as
// opaque apart from the fields its schema names.
type Record map[string]any

// Payload is a write body sent to the store. It never carries IDField.
type Payload map[string]any

// ID returns the server-assigned identifier, or "" if absent.
func (r Record) ID() string {
	return r.String(IDField)
}

// String returns a string field, or "" if absent or not a string.
func (r Record) String(field string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return ""
}

// Strings returns a list field. Decoded JSON arrays arrive as []any.
func (r Record) Strings(field string) []string {
	switch v := r[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Bool returns a boolean field, false if absent.
func (r Record) Bool(field string) bool {
	b, _ := r[field].(bool)
	return b
}

// CreatedAt parses the store's createdAt timestamp. Without one it falls
// back to the second-precision time embedded in an ObjectID _id, and is zero
// otherwise.
func (r Record) CreatedAt() time.Time {
	if t, err := time.Parse(time.RFC3339Nano, r.String("createdAt")); err == nil {
		return t
	}
	if oid, err := primitive.ObjectIDFromHex(r.ID()); err == nil {
		return oid.Timestamp()
	}
	return time.Time{}
}

// Clone returns a shallow copy so callers can patch a field without touching
// the original map.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Decode converts a record into one of the typed views (Project, Course, ...).
func Decode[T any](r Record) (T, error) {
	var out T
	data, err := json.Marshal(r)
	if err != nil {
		return out, fmt.Errorf("domain.Decode: marshal: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("domain.Decode: unmarshal: %w", err)
	}
	return out, nil
}
