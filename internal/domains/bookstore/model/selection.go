package model

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	maxNameLength    = 64
	maxSubRegions    = 64
	QueryRegion      = "region"
	QuerySubRegion   = "district"
	QuerySort        = "sort"
	querySortEnabled = "true"
)

// Selection is the user's current choice on the page: one county, any
// number of districts and the hit-rate sort toggle.
type Selection struct {
	Region           string   `json:"region"`
	SubRegions       []string `json:"sub_regions"`
	SortByPopularity bool     `json:"sort_by_popularity"`
}

// Validate bounds the selection read from a request.
func (s Selection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Region,
			validation.RuneLength(0, maxNameLength).Error("region is too long"),
		),
		validation.Field(&s.SubRegions,
			validation.Length(0, maxSubRegions).Error("too many districts selected"),
			validation.Each(
				validation.RuneLength(0, maxNameLength).Error("district is too long"),
			),
		),
	)
}

// SelectionFromQuery reads region, district (repeatable) and sort.
// Values are trimmed and empty districts dropped.
func SelectionFromQuery(q url.Values) Selection {
	sel := Selection{
		Region:           strings.TrimSpace(q.Get(QueryRegion)),
		SortByPopularity: parseToggle(q.Get(QuerySort)),
	}
	for _, d := range q[QuerySubRegion] {
		if d = strings.TrimSpace(d); d != "" {
			sel.SubRegions = append(sel.SubRegions, d)
		}
	}
	return sel
}

// HasQuery reports whether the request carries any selection parameter.
func HasQuery(q url.Values) bool {
	return q.Has(QueryRegion) || q.Has(QuerySubRegion) || q.Has(QuerySort)
}

// Query encodes the selection back into query parameters.
func (s Selection) Query() url.Values {
	q := url.Values{}
	if s.Region != "" {
		q.Set(QueryRegion, s.Region)
	}
	for _, d := range s.SubRegions {
		q.Add(QuerySubRegion, d)
	}
	if s.SortByPopularity {
		q.Set(QuerySort, querySortEnabled)
	}
	return q
}

func parseToggle(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
