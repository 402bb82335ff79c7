package service

import (
	"context"

	"bookstore-map/internal/domains/bookstore/model"
	"bookstore-map/internal/domains/bookstore/repository"
)

type BookstoreService struct {
	repo repository.RecordRepository
}

func NewBookstoreService(repo repository.RecordRepository) ServiceInterface {
	return &BookstoreService{repo: repo}
}

// Evaluate runs the whole pipeline for one interaction: fetch, options,
// selection resolution, filter, optional sort, cards. A fetch failure is
// returned as is.
func (s *BookstoreService) Evaluate(ctx context.Context, sel model.Selection) (*model.Page, error) {
	if err := sel.Validate(); err != nil {
		return nil, model.NewInvalidSelection(err)
	}

	records, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return BuildPage(records, sel), nil
}

// BuildPage is Evaluate without the fetch.
func BuildPage(records []model.Record, sel model.Selection) *model.Page {
	page := &model.Page{
		Total:   len(records),
		Regions: RegionsOf(records),
		Cards:   []model.Card{},
	}

	region := resolveRegion(page.Regions, sel.Region)
	page.SubRegions = SubRegionsOf(records, region)
	page.Selection = model.Selection{
		Region:           region,
		SubRegions:       resolveSubRegions(page.SubRegions, sel.SubRegions),
		SortByPopularity: sel.SortByPopularity,
	}

	if len(page.Selection.SubRegions) == 0 {
		page.Banner = model.InfoBanner()
		return page
	}

	matched := Filter(records, region, page.Selection.SubRegions)
	page.Matched = len(matched)
	page.Banner = model.SuccessBanner(len(matched))

	if sel.SortByPopularity {
		matched = SortByPopularity(matched)
	}
	page.Cards = model.ToCards(matched)
	return page
}

// resolveRegion behaves like a single-choice selector: an unknown or empty
// choice falls back to the first option.
func resolveRegion(options []string, requested string) string {
	for _, o := range options {
		if o == requested {
			return requested
		}
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}

// resolveSubRegions keeps the requested districts that are options, in
// option order.
func resolveSubRegions(options, requested []string) []string {
	wanted := make(map[string]struct{}, len(requested))
	for _, r := range requested {
		wanted[r] = struct{}{}
	}

	selected := []string{}
	for _, o := range options {
		if _, ok := wanted[o]; ok {
			selected = append(selected, o)
		}
	}
	return selected
}
