package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bookstore-map/internal/domains/bookstore/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	records []model.Record
	err     error
	calls   int
}

func (s *stubRepo) FetchAll(context.Context) ([]model.Record, error) {
	s.calls++
	return s.records, s.err
}

func TestEvaluateNothingSelected(t *testing.T) {
	repo := &stubRepo{records: exampleRecords()}
	svc := NewBookstoreService(repo)

	page, err := svc.Evaluate(context.Background(), model.Selection{})
	require.NoError(t, err)

	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []string{"A", "B"}, page.Regions)
	assert.Equal(t, "A", page.Selection.Region, "defaults to the first county")
	assert.Equal(t, []string{"X", "Y"}, page.SubRegions)
	assert.Empty(t, page.Selection.SubRegions)
	assert.Equal(t, model.InfoBanner(), page.Banner)
	assert.Empty(t, page.Cards)
	assert.Equal(t, 1, repo.calls)
}

func TestEvaluateFiltersAndSorts(t *testing.T) {
	svc := NewBookstoreService(&stubRepo{records: exampleRecords()})

	page, err := svc.Evaluate(context.Background(), model.Selection{
		Region:           "A",
		SubRegions:       []string{"Y", "X"},
		SortByPopularity: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"X", "Y"}, page.Selection.SubRegions)
	assert.Equal(t, 2, page.Matched)
	assert.Equal(t, model.SuccessBanner(2), page.Banner)
	assert.Equal(t, "找到 2 間書店", page.Banner.Message)
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "S1", page.Cards[0].Title)
	assert.Equal(t, "5", page.Cards[0].HitRate)
	assert.Equal(t, "S2", page.Cards[1].Title)
	assert.Equal(t, model.PlaceholderHitRate, page.Cards[1].HitRate)
}

func TestEvaluateSortToggleOff(t *testing.T) {
	records := []model.Record{rec("A", "X", "first"), withHitRate(rec("A", "X", "second"), 99)}
	svc := NewBookstoreService(&stubRepo{records: records})

	page, err := svc.Evaluate(context.Background(), model.Selection{Region: "A", SubRegions: []string{"X"}})
	require.NoError(t, err)
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "first", page.Cards[0].Title)
}

func TestEvaluateDropsUnknownChoices(t *testing.T) {
	svc := NewBookstoreService(&stubRepo{records: exampleRecords()})

	page, err := svc.Evaluate(context.Background(), model.Selection{Region: "B", SubRegions: []string{"Y", "Z"}})
	require.NoError(t, err)

	assert.Equal(t, "B", page.Selection.Region)
	assert.Empty(t, page.Selection.SubRegions, "Y is not a district of B")
	assert.Equal(t, model.BannerInfo, page.Banner.Kind)

	page, err = svc.Evaluate(context.Background(), model.Selection{Region: "nowhere", SubRegions: []string{"X"}})
	require.NoError(t, err)
	assert.Equal(t, "A", page.Selection.Region)
	assert.Equal(t, []string{"X"}, page.Selection.SubRegions)
	assert.Equal(t, 1, page.Matched)
}

func TestEvaluateEmptyDataset(t *testing.T) {
	svc := NewBookstoreService(&stubRepo{records: []model.Record{}})

	page, err := svc.Evaluate(context.Background(), model.Selection{Region: "A", SubRegions: []string{"X"}})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Regions)
	assert.Equal(t, "", page.Selection.Region)
	assert.Equal(t, model.BannerInfo, page.Banner.Kind)
}

func TestEvaluatePropagatesTransportError(t *testing.T) {
	fetchErr := model.NewTransportError("failed to call open data API", errors.New("dial tcp: i/o timeout"))
	svc := NewBookstoreService(&stubRepo{err: fetchErr})

	page, err := svc.Evaluate(context.Background(), model.Selection{})
	assert.Nil(t, page)
	assert.ErrorIs(t, err, fetchErr)
	assert.True(t, model.IsTransportError(err))
}

func TestEvaluateRejectsInvalidSelection(t *testing.T) {
	repo := &stubRepo{records: exampleRecords()}
	svc := NewBookstoreService(repo)

	_, err := svc.Evaluate(context.Background(), model.Selection{Region: strings.Repeat("x", 100)})
	assert.True(t, model.IsInvalidSelection(err))
	assert.Zero(t, repo.calls)
}

func TestBuildPageDoesNotMutateRecords(t *testing.T) {
	records := []model.Record{rec("A", "X", "low"), withHitRate(rec("A", "X", "high"), 3)}

	page := BuildPage(records, model.Selection{Region: "A", SubRegions: []string{"X"}, SortByPopularity: true})
	assert.Equal(t, "high", page.Cards[0].Title)
	assert.Equal(t, "low", *records[0].Name)
}
