package model

import "fmt"

// BannerKind distinguishes the prompt shown when nothing is selected from
// the result count.
type BannerKind string

const (
	BannerInfo    BannerKind = "info"
	BannerSuccess BannerKind = "success"
)

const (
	PageTitle         = "台灣特色書店地圖"
	TotalLabel        = "📊 書店總數"
	RegionLabel       = "請選擇縣市"
	SubRegionLabel    = "請選擇行政區域（可複選）"
	SortLabel         = "依據熱門程度排序（點閱率）"
	HitRateLabel      = "點閱率"
	NothingSelected   = "請選擇行政區以顯示書店資訊。"
	matchedCountTempl = "找到 %d 間書店"
)

type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
}

func InfoBanner() Banner {
	return Banner{Kind: BannerInfo, Message: NothingSelected}
}

func SuccessBanner(matched int) Banner {
	return Banner{Kind: BannerSuccess, Message: fmt.Sprintf(matchedCountTempl, matched)}
}

// Page is the result of one evaluation: everything needed to draw the UI.
type Page struct {
	Total      int       `json:"total"`
	Regions    []string  `json:"regions"`
	SubRegions []string  `json:"sub_regions"`
	Selection  Selection `json:"selection"`
	Banner     Banner    `json:"banner"`
	Matched    int       `json:"matched"`
	Cards      []Card    `json:"cards"`
}

// IsSubRegionSelected is used by the page template to check boxes.
func (p *Page) IsSubRegionSelected(name string) bool {
	for _, s := range p.Selection.SubRegions {
		if s == name {
			return true
		}
	}
	return false
}
