package service

import (
	"context"

	"bookstore-map/internal/domains/bookstore/model"
)

// ServiceInterface defines the page evaluation of the bookstore domain.
type ServiceInterface interface {
	// Evaluate fetches the dataset and builds the page for sel.
	Evaluate(ctx context.Context, sel model.Selection) (*model.Page, error)
}
