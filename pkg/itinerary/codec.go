package itinerary

import (
	"encoding/json"
	"strings"
)

// Marshal serialises the itinerary as the persisted JSON blob.
func Marshal(it *Itinerary) ([]byte, error) {
	if it == nil {
		it = New()
	}
	out := it
	if out.Days == nil {
		out = it.WithDays([]Day{})
	}
	return json.MarshalIndent(out, "", "  ")
}

// Unmarshal parses a stored blob. An empty payload yields the defaults. A
// missing or blank title falls back to DefaultTitle and a missing days list
// becomes empty. A bare array of days is accepted as a blob without a title.
func Unmarshal(data []byte) (*Itinerary, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return New(), nil
	}
	var it Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		var days []Day
		if lerr := json.Unmarshal(data, &days); lerr != nil {
			return nil, err
		}
		it = Itinerary{Days: days}
	}
	if strings.TrimSpace(it.Title) == "" {
		it.Title = DefaultTitle
	}
	if it.Days == nil {
		it.Days = []Day{}
	}
	for i := range it.Days {
		if it.Days[i].Activities == nil {
			it.Days[i].Activities = []Activity{}
		}
	}
	return &it, nil
}
