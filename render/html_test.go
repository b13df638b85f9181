package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

func TestHTMLEscapesMarkupInTitles(t *testing.T) {
	page := Page{
		Title: "flickwatch",
		Watchlist: []Card{
			{ImdbID: "tt0000001", Title: `<script>alert("x")</script> & "friends"`, Year: 2020},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, page))
	out := buf.String()

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp;")
	assert.NotContains(t, out, `"friends"`)
}

func TestHTMLMarksSavedResults(t *testing.T) {
	summaries := []omdb.Summary{
		{ImdbID: "tt0133093", Title: "The Matrix", Year: 1999},
		{ImdbID: "tt0234215", Title: "The Matrix Reloaded", Year: 2003},
	}
	saved := map[string]bool{"tt0133093": true}

	cards := CardsFromSummaries(summaries, func(id string) bool { return saved[id] })
	require.Len(t, cards, 2)
	assert.True(t, cards[0].Added)
	assert.False(t, cards[1].Added)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Title: "flickwatch", Results: cards}))
	assert.Equal(t, 1, strings.Count(buf.String(), "In watchlist"))
}

func TestHTMLSkipsMissingPosters(t *testing.T) {
	cards := CardsFromEntries([]watchlist.Entry{
		{ImdbID: "tt0000001", Title: "No Poster"},
	})

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Title: "flickwatch", Watchlist: cards}))
	assert.NotContains(t, buf.String(), "<img")
}

func TestHTMLEmptyWatchlist(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Page{Title: "flickwatch"}))
	assert.Contains(t, buf.String(), "No movies saved yet.")
}

func TestJSONRoundTrip(t *testing.T) {
	entries := []watchlist.Entry{
		{ImdbID: "tt0076759", Title: "Star Wars", Year: 1977, AddedAt: time.Now().UTC()},
		{ImdbID: "tt0080684", Title: "The Empire Strikes Back", Year: 1980, AddedAt: time.Now().UTC()},
	}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, entries))

	var decoded []watchlist.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "tt0076759", decoded[0].ImdbID)
	assert.Equal(t, "tt0080684", decoded[1].ImdbID)
}
