package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkfelic1/flickwatch/omdb"
	"github.com/nkfelic1/flickwatch/watchlist"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Year > 2000`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `contains(Title, "matrix") and Year > 1995 and daysSince(AddedAt) < 365`,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatchSummary(t *testing.T) {
	matrix := omdb.Summary{ImdbID: "tt0133093", Title: "The Matrix", Year: 1999}
	reloaded := omdb.Summary{ImdbID: "tt0234215", Title: "The Matrix Reloaded", Year: 2003}

	tests := []struct {
		name       string
		expression string
		summary    omdb.Summary
		want       bool
	}{
		{"year comparison hit", `Year >= 2000`, reloaded, true},
		{"year comparison miss", `Year >= 2000`, matrix, false},
		{"case-insensitive contains", `contains(Title, "MATRIX")`, matrix, true},
		{"id equality", `ImdbID == "tt0133093"`, matrix, true},
		{"conjunction", `contains(Title, "reloaded") and Year == 2003`, reloaded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.MatchSummary(tt.summary))
		})
	}
}

func TestMatchEntry(t *testing.T) {
	recent := watchlist.Entry{
		ImdbID:  "tt0133093",
		Title:   "The Matrix",
		Year:    1999,
		AddedAt: time.Now().AddDate(0, 0, -3),
	}
	old := watchlist.Entry{
		ImdbID:  "tt0076759",
		Title:   "Star Wars",
		Year:    1977,
		AddedAt: time.Now().AddDate(-2, 0, 0),
	}

	f, err := Compile(`daysSince(AddedAt) < 30`)
	require.NoError(t, err)

	assert.True(t, f.MatchEntry(recent))
	assert.False(t, f.MatchEntry(old))
}

func TestRuntimeErrorIsNonMatch(t *testing.T) {
	// Missing is nil at run time; comparing it fails evaluation,
	// which must skip the record instead of panicking.
	f, err := Compile(`Missing > 10`)
	require.NoError(t, err)

	assert.False(t, f.MatchSummary(omdb.Summary{Title: "Anything"}))
}
