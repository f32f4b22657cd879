package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerTime_ResolvePending(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	resolved := PendingServerTime().Resolve(now)

	assert.Equal(t, now, resolved)
}

func TestServerTime_ResolveConcreteKeepsInstant(t *testing.T) {
	instant := time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	resolved := ServerTimeAt(instant).Resolve(now)

	assert.Equal(t, instant, resolved)
}

func TestServerTime_JSONPendingIsNull(t *testing.T) {
	data, err := json.Marshal(PendingServerTime())

	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestServerTime_JSONRoundTrip(t *testing.T) {
	instant := time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)

	data, err := json.Marshal(ServerTimeAt(instant))
	require.NoError(t, err)

	var decoded ServerTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.IsPending())
	assert.Equal(t, instant, decoded.Resolve(time.Now()))
}

func TestServerTime_JSONNullDecodesAsPending(t *testing.T) {
	var decoded ServerTime

	require.NoError(t, json.Unmarshal([]byte("null"), &decoded))

	assert.True(t, decoded.IsPending())
}
