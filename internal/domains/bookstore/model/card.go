package model

// Placeholders shown when a record lacks a field.
const (
	PlaceholderTitle        = "未知書店"
	PlaceholderImageURL     = "/static/placeholder.svg"
	PlaceholderHitRate      = "N/A"
	PlaceholderIntroduction = "無簡介"
	PlaceholderAddress      = "無地址"
	PlaceholderOpenTime     = "無營業時間"
	PlaceholderEmail        = "無 Email"
)

// Card is the display form of one bookstore.
type Card struct {
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	HitRate      string `json:"hit_rate"`
	Introduction string `json:"introduction"`
	Address      string `json:"address"`
	OpenTime     string `json:"open_time"`
	Email        string `json:"email"`
}

// ToCard maps a record to a card, substituting a placeholder for every
// absent field. It never fails.
func (r Record) ToCard() Card {
	hitRate, ok := r.HitRate.Display()
	if !ok {
		hitRate = PlaceholderHitRate
	}

	return Card{
		Title:        orDefault(r.Name, PlaceholderTitle),
		ImageURL:     orDefault(r.RepresentImage, PlaceholderImageURL),
		HitRate:      hitRate,
		Introduction: orDefault(r.Introduction, PlaceholderIntroduction),
		Address:      orDefault(r.Address, PlaceholderAddress),
		OpenTime:     orDefault(r.OpenTime, PlaceholderOpenTime),
		Email:        orDefault(r.Email, PlaceholderEmail),
	}
}

// ToCards maps records in order.
func ToCards(records []Record) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, r.ToCard())
	}
	return cards
}

func orDefault(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}
