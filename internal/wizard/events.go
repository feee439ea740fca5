package wizard

// EventKind identifies a wizard notification.
// Values are stable strings so they can be journaled and matched in hook configs.
type EventKind string

const (
	// Page-scoped lifecycle notifications
	EventLoad       EventKind = "load"        // page became current
	EventCommit     EventKind = "commit"      // cancellable pre-navigation checkpoint
	EventPageCancel EventKind = "page_cancel" // wizard cancelled while page was current

	// Wizard-scoped notifications
	EventCancel EventKind = "cancel"
	EventFinish EventKind = "finish"

	// Button click notifications (scoped to the current page)
	EventPrimaryClicked      EventKind = "primary_clicked"
	EventNextClicked         EventKind = "next_clicked"
	EventDangerClicked       EventKind = "danger_clicked"
	EventFinishClicked       EventKind = "finish_clicked"
	EventPreviousClicked     EventKind = "previous_clicked"
	EventCustomClicked       EventKind = "custom_clicked"
	EventHeaderActionClicked EventKind = "header_action_clicked"

	// Two-way bound property change notifications
	EventNextStepDisabledChange     EventKind = "next_step_disabled_change"
	EventPreviousStepDisabledChange EventKind = "previous_step_disabled_change"
	EventStopCancelChange           EventKind = "stop_cancel_change"
)

// Event is a single synchronous notification.
type Event struct {
	Kind EventKind
	// PageID is the page the event concerns; empty for wizard-scoped events
	// fired while no page is current.
	PageID string
	// ButtonType carries the literal button type for click events and the
	// action id for header action clicks.
	ButtonType string
	// Value is the new value for property change events.
	Value bool

	veto *bool
}

// Cancellable reports whether a listener may veto this event.
func (e Event) Cancellable() bool {
	return e.veto != nil
}

// PreventDefault vetoes a cancellable event. It is a no-op for other events.
// The veto must happen inside the listener call; there is no deferred veto.
func (e Event) PreventDefault() {
	if e.veto != nil {
		*e.veto = true
	}
}

// Prevented reports whether an earlier listener already vetoed the event.
func (e Event) Prevented() bool {
	return e.veto != nil && *e.veto
}

// Listener receives notifications.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// bus is a synchronous fan-out list of listeners.
type bus struct {
	subs   []subscription
	nextID int
}

// subscribe registers fn and returns a function that removes it.
func (b *bus) subscribe(fn Listener) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *bus) emit(e Event) {
	// Listeners may unsubscribe while being notified
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		s.fn(e)
	}
}
