package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookstore-map/internal/domains/bookstore/model"
	"bookstore-map/pkg/logger"
	"bookstore-map/pkg/metrics"
)

const maxBodyBytes = 64 << 20

// OpenDataRepository fetches the bookstore feed from the Ministry of
// Culture open-data endpoint. Every call hits the network.
type OpenDataRepository struct {
	endpoint   string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewOpenDataRepository creates a repository for endpoint.
// m may be nil.
func NewOpenDataRepository(endpoint string, timeout time.Duration, m *metrics.Metrics) *OpenDataRepository {
	return &OpenDataRepository{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
	}
}

// FetchAll issues one GET and decodes the body as a JSON array of records.
func (r *OpenDataRepository) FetchAll(ctx context.Context) ([]model.Record, error) {
	start := time.Now()

	records, err := r.fetch(ctx)
	r.metrics.ObserveFetch(time.Since(start), len(records), err)
	if err != nil {
		logger.Error("Open data fetch failed", err)
		return nil, err
	}

	logger.Info("Open data fetched", map[string]interface{}{
		"records":     len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return records, nil
}

func (r *OpenDataRepository) fetch(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, model.NewTransportError("failed to create HTTP request", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, model.NewTransportError("failed to call open data API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, model.NewTransportError(
			"open data API returned an error status",
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, model.NewTransportError("failed to read response", err)
	}

	var records []model.Record
	if err := json.Unmarshal(bodyBytes, &records); err != nil {
		return nil, model.NewTransportError("failed to unmarshal response", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
