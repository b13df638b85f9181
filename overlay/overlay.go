// Package overlay models the details view as an explicit state
// machine, independent of any rendering surface: closed -> loading ->
// populated|failed -> closed. Only one overlay exists; opening while
// open restarts the cycle for the new id.
package overlay

import (
	"sync"

	"github.com/nkfelic1/flickwatch/omdb"
)

// State is the overlay's lifecycle position.
type State int

const (
	StateClosed State = iota
	StateLoading
	StatePopulated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket identifies one open request. A fetch result may only be
// applied with the ticket handed out by the Open call that started it;
// a ticket from a superseded request is rejected, so an earlier
// response that resolves late can never overwrite a newer request.
type Ticket struct {
	id  string
	seq uint64
}

// ID returns the external id the ticket was opened for.
func (t Ticket) ID() string {
	return t.id
}

// Overlay is the single details view instance.
type Overlay struct {
	mu     sync.Mutex
	state  State
	id     string
	seq    uint64
	detail *omdb.Detail
	err    error
}

// New returns a closed overlay.
func New() *Overlay {
	return &Overlay{}
}

// Open moves the overlay to loading for the given id and returns the
// ticket the eventual result must present. Opening while already open
// abandons the previous request.
func (o *Overlay) Open(imdbID string) Ticket {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	o.state = StateLoading
	o.id = imdbID
	o.detail = nil
	o.err = nil

	return Ticket{id: imdbID, seq: o.seq}
}

// Resolve applies a fetch outcome. It reports whether the result was
// accepted; a stale ticket or a closed overlay leaves the state
// untouched.
func (o *Overlay) Resolve(t Ticket, detail *omdb.Detail, err error) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != StateLoading || t.seq != o.seq {
		return false
	}

	if err != nil {
		o.state = StateFailed
		o.err = err
		return true
	}

	o.state = StatePopulated
	o.detail = detail
	return true
}

// Close dismisses the overlay from any state.
func (o *Overlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state = StateClosed
	o.id = ""
	o.detail = nil
	o.err = nil
}

// View is a renderable snapshot of the overlay.
type View struct {
	State  State
	ID     string
	Detail *omdb.Detail
	Err    error
}

// View returns the current snapshot.
func (o *Overlay) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	return View{
		State:  o.state,
		ID:     o.id,
		Detail: o.detail,
		Err:    o.err,
	}
}
