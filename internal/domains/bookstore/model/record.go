package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Record is one entry of the open-data bookstore feed.
// The feed owns the schema, so every field is optional and a value of the
// wrong JSON type is treated as absent.
type Record struct {
	Name           *string    `json:"name,omitempty"`
	CityName       *string    `json:"cityName,omitempty"`
	TownName       *string    `json:"townName,omitempty"`
	RepresentImage *string    `json:"representImage,omitempty"`
	HitRate        Popularity `json:"hitRate"`
	Introduction   *string    `json:"introduction,omitempty"`
	Address        *string    `json:"address,omitempty"`
	OpenTime       *string    `json:"openTime,omitempty"`
	Email          *string    `json:"email,omitempty"`
}

// UnmarshalJSON decodes a record field by field so that one badly typed
// field does not reject the whole record. An element that is not an object
// decodes as a record with no fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*r = Record{}
		return nil
	}

	*r = Record{
		Name:           optionalString(fields["name"]),
		CityName:       optionalString(fields["cityName"]),
		TownName:       optionalString(fields["townName"]),
		RepresentImage: optionalString(fields["representImage"]),
		HitRate:        ParsePopularity(fields["hitRate"]),
		Introduction:   optionalString(fields["introduction"]),
		Address:        optionalString(fields["address"]),
		OpenTime:       optionalString(fields["openTime"]),
		Email:          optionalString(fields["email"]),
	}
	return nil
}

// City returns the trimmed county name and whether it is present and non-empty.
func (r Record) City() (string, bool) {
	return trimmed(r.CityName)
}

// Town returns the trimmed district name and whether it is present and non-empty.
func (r Record) Town() (string, bool) {
	return trimmed(r.TownName)
}

func optionalString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func trimmed(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// StringPtr is a small helper for building records in code and tests.
func StringPtr(s string) *string {
	return &s
}
