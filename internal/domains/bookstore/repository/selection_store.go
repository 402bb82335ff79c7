package repository

import (
	"context"
	"fmt"
	"time"

	"bookstore-map/internal/domains/bookstore/model"
	"bookstore-map/pkg/cache"
)

const selectionKeyPrefix = "selection:"

// cacheSelectionStore keeps selections in the shared cache under
// "selection:<session id>".
type cacheSelectionStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewSelectionStore returns a SelectionStore backed by c.
func NewSelectionStore(c cache.Cache, ttl time.Duration) SelectionStore {
	return &cacheSelectionStore{cache: c, ttl: ttl}
}

func (s *cacheSelectionStore) Load(ctx context.Context, sessionID string) (model.Selection, bool, error) {
	var sel model.Selection
	if sessionID == "" {
		return sel, false, nil
	}

	found, err := s.cache.Get(ctx, selectionKey(sessionID), &sel)
	if err != nil {
		return model.Selection{}, false, fmt.Errorf("load selection: %w", err)
	}
	return sel, found, nil
}

func (s *cacheSelectionStore) Save(ctx context.Context, sessionID string, sel model.Selection) error {
	if sessionID == "" {
		return nil
	}
	if err := s.cache.Set(ctx, selectionKey(sessionID), sel, s.ttl); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}
	return nil
}

func selectionKey(sessionID string) string {
	return selectionKeyPrefix + sessionID
}
