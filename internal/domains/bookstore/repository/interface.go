package repository

import (
	"context"

	"bookstore-map/internal/domains/bookstore/model"
)

// RecordRepository reads the bookstore dataset.
type RecordRepository interface {
	// FetchAll returns every record of the feed, as delivered.
	// Failures are *model.BookstoreError with code TRANSPORT_ERROR.
	FetchAll(ctx context.Context) ([]model.Record, error)
}

// SelectionStore remembers the last selection of a browser session.
type SelectionStore interface {
	// Load returns the stored selection and whether one was found.
	Load(ctx context.Context, sessionID string) (model.Selection, bool, error)
	Save(ctx context.Context, sessionID string, sel model.Selection) error
}
