package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkfelic1/flickwatch/omdb"
)

func TestLifecycle(t *testing.T) {
	o := New()
	assert.Equal(t, StateClosed, o.View().State)

	ticket := o.Open("tt0133093")
	view := o.View()
	assert.Equal(t, StateLoading, view.State)
	assert.Equal(t, "tt0133093", view.ID)
	assert.Equal(t, "tt0133093", ticket.ID())

	detail := &omdb.Detail{ImdbID: "tt0133093", Title: "The Matrix"}
	require.True(t, o.Resolve(ticket, detail, nil))

	view = o.View()
	assert.Equal(t, StatePopulated, view.State)
	assert.Equal(t, "The Matrix", view.Detail.Title)

	o.Close()
	view = o.View()
	assert.Equal(t, StateClosed, view.State)
	assert.Nil(t, view.Detail)
}

func TestFailedFetchKeepsOverlayOpen(t *testing.T) {
	o := New()
	ticket := o.Open("tt9999999")

	require.True(t, o.Resolve(ticket, nil, omdb.ErrNotFound))

	view := o.View()
	assert.Equal(t, StateFailed, view.State)
	assert.Equal(t, "tt9999999", view.ID)
	require.ErrorIs(t, view.Err, omdb.ErrNotFound)
}

func TestLateResponseCannotOverwriteNewerRequest(t *testing.T) {
	o := New()

	// open for A, then re-open for B before A resolves
	ticketA := o.Open("tt0000001")
	ticketB := o.Open("tt0000002")

	// B resolves first
	detailB := &omdb.Detail{ImdbID: "tt0000002", Title: "B"}
	require.True(t, o.Resolve(ticketB, detailB, nil))

	// A's response arrives late and must be discarded
	detailA := &omdb.Detail{ImdbID: "tt0000001", Title: "A"}
	assert.False(t, o.Resolve(ticketA, detailA, nil))

	view := o.View()
	assert.Equal(t, StatePopulated, view.State)
	assert.Equal(t, "B", view.Detail.Title)
	assert.Equal(t, "tt0000002", view.ID)
}

func TestLateFailureCannotOverwriteNewerRequest(t *testing.T) {
	o := New()

	ticketA := o.Open("tt0000001")
	ticketB := o.Open("tt0000002")

	require.True(t, o.Resolve(ticketB, &omdb.Detail{Title: "B"}, nil))
	assert.False(t, o.Resolve(ticketA, nil, errors.New("timeout")))

	assert.Equal(t, StatePopulated, o.View().State)
}

func TestResolveAfterCloseIsDiscarded(t *testing.T) {
	o := New()
	ticket := o.Open("tt0133093")
	o.Close()

	assert.False(t, o.Resolve(ticket, &omdb.Detail{Title: "The Matrix"}, nil))
	assert.Equal(t, StateClosed, o.View().State)
}

func TestReopenRestartsCycle(t *testing.T) {
	o := New()

	first := o.Open("tt0000001")
	require.True(t, o.Resolve(first, &omdb.Detail{Title: "A"}, nil))

	second := o.Open("tt0000002")
	view := o.View()
	assert.Equal(t, StateLoading, view.State)
	assert.Equal(t, "tt0000002", view.ID)
	assert.Nil(t, view.Detail)

	require.True(t, o.Resolve(second, &omdb.Detail{Title: "B"}, nil))
	assert.Equal(t, "B", o.View().Detail.Title)
}
