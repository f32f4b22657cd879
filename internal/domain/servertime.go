package domain

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ServerTime is a two-case timestamp: either a concrete instant, or a marker
// asking the persistence layer to stamp the record at write time. The pending
// form exists only at the persistence boundary and must be resolved to a
// concrete instant before it reaches an OrderRecord.
type ServerTime struct {
	instant time.Time
	pending bool
}

// PendingServerTime returns the "stamp me on write" marker.
func PendingServerTime() ServerTime {
	return ServerTime{pending: true}
}

// ServerTimeAt wraps a concrete instant.
func ServerTimeAt(t time.Time) ServerTime {
	return ServerTime{instant: t}
}

func (s ServerTime) IsPending() bool {
	return s.pending
}

// Resolve collapses the two cases to a concrete instant: the wrapped instant
// when resolved, or now when still pending.
func (s ServerTime) Resolve(now time.Time) time.Time {
	if s.pending {
		return now
	}
	return s.instant
}

// MarshalJSON encodes a pending value as null and a resolved one as RFC 3339.
func (s ServerTime) MarshalJSON() ([]byte, error) {
	if s.pending {
		return []byte("null"), nil
	}
	return json.Marshal(s.instant)
}

// MarshalBSONValue stamps a pending value with the write-time instant, so a
// pending timestamp becomes concrete the moment the record is persisted.
func (s ServerTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(s.Resolve(time.Now()))
}

func (s *ServerTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bson.TypeNull {
		*s = PendingServerTime()
		return nil
	}
	raw := bson.RawValue{Type: t, Value: data}
	var instant time.Time
	if err := raw.Unmarshal(&instant); err != nil {
		return err
	}
	*s = ServerTimeAt(instant)
	return nil
}

func (s *ServerTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = PendingServerTime()
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*s = ServerTimeAt(t)
	return nil
}
