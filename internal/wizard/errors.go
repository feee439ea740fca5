package wizard

import "errors"

var (
	// ErrPageNotFound is returned when an id does not resolve to a registered page.
	ErrPageNotFound = errors.New("page not found")

	// ErrPageNotRegistered is returned when a page is not part of the collection.
	ErrPageNotRegistered = errors.New("page not registered")
)

// Outcome describes what a navigation request did.
// Blocked and InvalidTransition are not failures: nothing changed.
type Outcome int

const (
	Moved             Outcome = iota // current page changed
	Finished                         // last page committed and host closed
	Blocked                          // current page not ready to complete
	InvalidTransition                // no such neighbor, or finish off the last page
	Vetoed                           // a commit listener prevented the action
	Closed                           // cancel closed the host
	CancelStopped                    // cancel emitted but the page stopped the close
	Emitted                          // notification only, no navigation (custom buttons)
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Finished:
		return "finished"
	case Blocked:
		return "blocked"
	case InvalidTransition:
		return "invalid_transition"
	case Vetoed:
		return "vetoed"
	case Closed:
		return "closed"
	case CancelStopped:
		return "cancel_stopped"
	case Emitted:
		return "emitted"
	default:
		return "unknown"
	}
}
