// Package render produces the exportable views of search results and
// the watchlist. HTML output goes through html/template so every
// API-supplied text field is contextually escaped; titles containing
// markup can never be interpreted as markup.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

// Card is one rendered movie tile.
type Card struct {
	ImdbID string
	Title  string
	Year   int
	Poster string
	Added  bool
}

// Page is the full export document.
type Page struct {
	Title     string
	Results   []Card
	Watchlist []Card
}

// CardsFromSummaries converts search results to cards, marking the
// ones already saved so the add control renders disabled.
func CardsFromSummaries(summaries []omdb.Summary, saved func(string) bool) []Card {
	cards := make([]Card, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, Card{
			ImdbID: s.ImdbID,
			Title:  s.Title,
			Year:   s.Year,
			Poster: s.Poster,
			Added:  saved != nil && saved(s.ImdbID),
		})
	}
	return cards
}

// CardsFromEntries converts watchlist entries to cards in display
// order.
func CardsFromEntries(entries []watchlist.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, Card{
			ImdbID: e.ImdbID,
			Title:  e.Title,
			Year:   e.Year,
			Poster: e.Poster,
			Added:  true,
		})
	}
	return cards
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Results}}
<section id="results">
<h2>Search results</h2>
{{range .Results}}{{template "card" .}}{{end}}
</section>
{{end}}
<section id="watchlist">
<h2>Watchlist</h2>
{{if .Watchlist}}{{range .Watchlist}}{{template "card" .}}{{end}}{{else}}<p>No movies saved yet.</p>{{end}}
</section>
</body>
</html>
{{define "card"}}<article class="card" data-id="{{.ImdbID}}">
{{if .Poster}}<img src="{{.Poster}}" alt="{{.Title}} poster">{{end}}
<h3>{{.Title}}{{if .Year}} ({{.Year}}){{end}}</h3>
{{if .Added}}<span class="added">In watchlist</span>{{end}}
</article>
{{end}}`))

// HTML writes the page as an HTML document.
func HTML(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// JSON writes the watchlist entries as an indented JSON array, the
// same shape the store persists.
func JSON(w io.Writer, entries []watchlist.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode watchlist: %w", err)
	}
	return nil
}
