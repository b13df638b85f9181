package watchlist

import (
	"time"

	"github.com/nkfelic1/flickwatch/omdb"
)

// Entry is one saved movie. Entries are immutable after Add and their
// insertion order defines display order.
type Entry struct {
	ImdbID  string    `json:"imdbID"`
	Title   string    `json:"title"`
	Year    int       `json:"year,omitempty"`
	Poster  string    `json:"poster,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

// EntryFromSummary builds an entry from a search result.
func EntryFromSummary(s omdb.Summary) Entry {
	return Entry{
		ImdbID: s.ImdbID,
		Title:  s.Title,
		Year:   s.Year,
		Poster: s.Poster,
	}
}

// EntryFromDetail builds an entry from a full detail record, keeping
// only the summary-level fields the watchlist persists.
func EntryFromDetail(d *omdb.Detail) Entry {
	return Entry{
		ImdbID: d.ImdbID,
		Title:  d.Title,
		Year:   d.Year,
		Poster: d.Poster,
	}
}
