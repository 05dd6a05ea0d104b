package models

import "time"

// Event is a live-music listing. DateAndTime is kept as the raw server
// string; StartsAt parses it for ordering and display.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DateAndTime string   `json:"date_and_time"`
	Venue       string   `json:"venue"`
	Address     string   `json:"address"`
	URL         string   `json:"url,omitempty"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Genres      []string `json:"genres"`
	User        string   `json:"user"`
}

// dateAndTimeLayouts are tried in order when parsing DateAndTime.
var dateAndTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// StartsAt parses DateAndTime. Unparseable values yield the zero time so
// they sort first; relative order among them is preserved by the stable
// sort in the events service.
func (e *Event) StartsAt() time.Time {
	for _, layout := range dateAndTimeLayouts {
		if t, err := time.Parse(layout, e.DateAndTime); err == nil {
			return t
		}
	}
	return time.Time{}
}
