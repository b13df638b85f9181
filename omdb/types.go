package omdb

import (
	"strconv"
	"strings"
)

// missingValue is what the API sends for fields it has no data for.
const missingValue = "N/A"

// Summary is the abbreviated movie record returned by title searches.
// ImdbID is the identity key, stable across search and detail lookups.
type Summary struct {
	ImdbID string
	Title  string
	Year   int
	Poster string
}

// Detail is the full movie record returned by id lookups. It is
// transient: nothing in this program persists a Detail.
type Detail struct {
	ImdbID     string
	Title      string
	Year       int
	Rated      string
	Genre      string
	Director   string
	Actors     string
	Plot       string
	Poster     string
	ImdbRating string
}

// searchResponse mirrors the wire shape of the search-by-title endpoint.
// The API signals success in-band via the Response field.
type searchResponse struct {
	Search       []searchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

type searchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

func (r searchResult) toSummary() Summary {
	return Summary{
		ImdbID: r.ImdbID,
		Title:  r.Title,
		Year:   parseYear(r.Year),
		Poster: cleanValue(r.Poster),
	}
}

// detailResponse mirrors the wire shape of the lookup-by-id endpoint.
type detailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

func (r detailResponse) toDetail() *Detail {
	return &Detail{
		ImdbID:     r.ImdbID,
		Title:      r.Title,
		Year:       parseYear(r.Year),
		Rated:      cleanValue(r.Rated),
		Genre:      cleanValue(r.Genre),
		Director:   cleanValue(r.Director),
		Actors:     cleanValue(r.Actors),
		Plot:       cleanValue(r.Plot),
		Poster:     cleanValue(r.Poster),
		ImdbRating: cleanValue(r.ImdbRating),
	}
}

// cleanValue maps the API's "N/A" sentinel to an empty string.
func cleanValue(s string) string {
	if s == missingValue {
		return ""
	}
	return s
}

// parseYear extracts the leading year from strings like "1999" or
// "2010–2014". Returns 0 when no year can be read.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if len(s) > 4 {
		s = s[:4]
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return year
}
