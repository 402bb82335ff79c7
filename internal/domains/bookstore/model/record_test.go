package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUnmarshalToleratesBadFields(t *testing.T) {
	body := `[
		{"name":"書店A","cityName":" 臺北市 ","townName":"大安區","hitRate":12,"email":"a@example.com"},
		{"name":42,"cityName":null,"hitRate":"abc","address":["x"]},
		{},
		"not an object",
		null
	]`

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(body), &records))
	require.Len(t, records, 5)

	city, ok := records[0].City()
	assert.True(t, ok)
	assert.Equal(t, "臺北市", city)
	assert.True(t, records[0].HitRate.IsNumeric())
	assert.Equal(t, 12.0, records[0].HitRate.Value())

	assert.Nil(t, records[1].Name)
	assert.Nil(t, records[1].CityName)
	assert.Nil(t, records[1].Address)
	assert.False(t, records[1].HitRate.IsNumeric())

	for _, r := range records[2:] {
		assert.Equal(t, Record{}, r)
	}
}

func TestRecordWhitespaceOnlyRegionIsAbsent(t *testing.T) {
	r := Record{CityName: StringPtr("   "), TownName: StringPtr("\t")}

	_, ok := r.City()
	assert.False(t, ok)
	_, ok = r.Town()
	assert.False(t, ok)
}

func TestParsePopularity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		numeric bool
		value   float64
		display string
		shown   bool
	}{
		{name: "integer", raw: `5`, numeric: true, value: 5, display: "5", shown: true},
		{name: "float", raw: `12.5`, numeric: true, value: 12.5, display: "12.5", shown: true},
		{name: "numeric string", raw: `" 30 "`, numeric: true, value: 30, display: "30", shown: true},
		{name: "text", raw: `"many"`, display: "many", shown: true},
		{name: "nan string", raw: `"NaN"`, display: "NaN", shown: true},
		{name: "empty string", raw: `""`},
		{name: "null", raw: `null`},
		{name: "bool", raw: `true`},
		{name: "missing", raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePopularity(json.RawMessage(tt.raw))
			assert.Equal(t, tt.numeric, p.IsNumeric())
			assert.Equal(t, tt.value, p.Value())
			display, shown := p.Display()
			assert.Equal(t, tt.shown, shown)
			assert.Equal(t, tt.display, display)
		})
	}
}

func TestToCardUsesPlaceholders(t *testing.T) {
	card := Record{}.ToCard()

	assert.Equal(t, Card{
		Title:        PlaceholderTitle,
		ImageURL:     PlaceholderImageURL,
		HitRate:      PlaceholderHitRate,
		Introduction: PlaceholderIntroduction,
		Address:      PlaceholderAddress,
		OpenTime:     PlaceholderOpenTime,
		Email:        PlaceholderEmail,
	}, card)
}

func TestToCardKeepsPresentFields(t *testing.T) {
	r := Record{
		Name:           StringPtr("晃晃書店"),
		RepresentImage: StringPtr("https://example.com/a.jpg"),
		HitRate:        NewPopularity(1024),
		Introduction:   StringPtr("intro"),
		Address:        StringPtr("addr"),
		OpenTime:       StringPtr("10:00-18:00"),
		Email:          StringPtr("shop@example.com"),
	}

	card := r.ToCard()
	assert.Equal(t, "晃晃書店", card.Title)
	assert.Equal(t, "https://example.com/a.jpg", card.ImageURL)
	assert.Equal(t, "1024", card.HitRate)
	assert.Equal(t, "intro", card.Introduction)
	assert.Equal(t, "addr", card.Address)
	assert.Equal(t, "10:00-18:00", card.OpenTime)
	assert.Equal(t, "shop@example.com", card.Email)
}

func TestToCardsPreservesOrder(t *testing.T) {
	cards := ToCards([]Record{{Name: StringPtr("b")}, {Name: StringPtr("a")}})
	require.Len(t, cards, 2)
	assert.Equal(t, "b", cards[0].Title)
	assert.Equal(t, "a", cards[1].Title)

	assert.Empty(t, ToCards(nil))
}
