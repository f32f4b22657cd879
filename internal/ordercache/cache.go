package ordercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dannyjar1/AgriConnect-sub000/internal/domain"
	"github.com/Dannyjar1/AgriConnect-sub000/internal/kv"
	"golang.org/x/sync/singleflight"
)

// Capacity is the maximum number of orders kept per user. Older entries are
// silently evicted.
const Capacity = 50

// History is the per-user bounded order log used for tracking and read-back.
// Each user's list lives under its own key, so operations on one user can
// never touch another user's orders.
type History struct {
	store    kv.Store
	capacity int
	sfg      singleflight.Group // Prevents stampedes on concurrent reads
}

func NewHistory(store kv.Store) *History {
	return &History{store: store, capacity: Capacity}
}

// ListFor returns the user's orders, newest first. A user with no history
// gets an empty list, not an error.
func (h *History) ListFor(ctx context.Context, userID string) ([]domain.OrderRecord, error) {
	v, err, _ := h.sfg.Do(userID, func() (interface{}, error) {
		return h.load(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	// Coalesced callers share the flight's result; hand each its own copy.
	records := v.([]domain.OrderRecord)
	out := make([]domain.OrderRecord, len(records))
	copy(out, records)
	return out, nil
}

// AppendFor prepends the record to the user's history, evicting the oldest
// entries beyond capacity.
func (h *History) AppendFor(ctx context.Context, userID string, record domain.OrderRecord) error {
	records, err := h.load(ctx, userID)
	if err != nil {
		return err
	}

	records = append([]domain.OrderRecord{record}, records...)
	if len(records) > h.capacity {
		records = records[:h.capacity]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal order history: %w", err)
	}

	if err := h.store.Set(ctx, historyKey(userID), string(data)); err != nil {
		return fmt.Errorf("store order history: %w", err)
	}
	return nil
}

// ClearFor removes the user's entire history.
func (h *History) ClearFor(ctx context.Context, userID string) error {
	if err := h.store.Remove(ctx, historyKey(userID)); err != nil {
		return fmt.Errorf("clear order history: %w", err)
	}
	return nil
}

func (h *History) load(ctx context.Context, userID string) ([]domain.OrderRecord, error) {
	data, err := h.store.Get(ctx, historyKey(userID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []domain.OrderRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load order history: %w", err)
	}

	var records []domain.OrderRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("unmarshal order history: %w", err)
	}
	return records, nil
}

func historyKey(userID string) string {
	return fmt.Sprintf("orders:%s", userID)
}
