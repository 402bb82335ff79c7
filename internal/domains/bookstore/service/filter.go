package service

import (
	"cmp"
	"slices"

	"bookstore-map/internal/domains/bookstore/model"
)

// Filter keeps the records in region whose district is one of subRegions,
// in input order. No districts means no results.
func Filter(records []model.Record, region string, subRegions []string) []model.Record {
	result := []model.Record{}
	if len(subRegions) == 0 {
		return result
	}

	wanted := make(map[string]struct{}, len(subRegions))
	for _, s := range subRegions {
		wanted[s] = struct{}{}
	}

	for _, r := range records {
		city, ok := r.City()
		if !ok || city != region {
			continue
		}
		town, ok := r.Town()
		if !ok {
			continue
		}
		if _, ok := wanted[town]; ok {
			result = append(result, r)
		}
	}
	return result
}

// SortByPopularity returns a copy sorted by hit rate, highest first.
// Records without a numeric hit rate go last. Ties keep their order.
func SortByPopularity(records []model.Record) []model.Record {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []model.Record{}
	}
	slices.SortStableFunc(sorted, comparePopularity)
	return sorted
}

func comparePopularity(a, b model.Record) int {
	an, bn := a.HitRate.IsNumeric(), b.HitRate.IsNumeric()
	switch {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	case !an && !bn:
		return 0
	}
	return cmp.Compare(b.HitRate.Value(), a.HitRate.Value())
}
