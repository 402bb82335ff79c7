package service

import (
	"slices"

	"bookstore-map/internal/domains/bookstore/model"
)

// RegionsOf returns the distinct trimmed county names in ascending order.
// Records without a county are skipped.
func RegionsOf(records []model.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if city, ok := r.City(); ok {
			seen[city] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// SubRegionsOf returns the distinct trimmed district names of the records
// whose trimmed county equals region, in ascending order.
func SubRegionsOf(records []model.Record, region string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		city, ok := r.City()
		if !ok || city != region {
			continue
		}
		if town, ok := r.Town(); ok {
			seen[town] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
