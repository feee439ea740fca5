package wizard

import (
	"github.com/mark3labs/stepwise/internal/logger"
)

// Navigator owns the single current-page pointer. Every change of the
// current page goes through SetCurrentPage.
type Navigator struct {
	pages   *PageCollection
	host    Host
	current *Page // relation only, pages owns the page
	bus     bus
}

// NewNavigator creates a navigator over pages that closes host on finish/cancel.
func NewNavigator(pages *PageCollection, host Host) *Navigator {
	if host == nil {
		host = NewModalHost()
	}
	return &Navigator{pages: pages, host: host}
}

// Pages returns the collection the navigator walks.
func (n *Navigator) Pages() *PageCollection {
	return n.pages
}

// Host returns the host shell.
func (n *Navigator) Host() Host {
	return n.host
}

// CurrentPage returns the current page, nil when idle.
func (n *Navigator) CurrentPage() *Page {
	return n.current
}

// IsFirst reports whether the current page is the first page.
func (n *Navigator) IsFirst() bool {
	return n.current != nil && n.current == n.pages.First()
}

// IsLast reports whether the current page is the last page.
func (n *Navigator) IsLast() bool {
	return n.current != nil && n.current == n.pages.Last()
}

// Subscribe registers a listener for every notification of the wizard.
func (n *Navigator) Subscribe(fn Listener) func() {
	return n.bus.subscribe(fn)
}

// SetCurrentPage makes p current and emits its load event, even when p
// was already current. Pages that are not registered are ignored.
func (n *Navigator) SetCurrentPage(p *Page) {
	if p == nil || p.nav != n {
		logger.Warn("Ignoring request to make unregistered page current")
		return
	}
	n.current = p
	logger.Debug("Current page: %s", p.ID())
	p.notify(Event{Kind: EventLoad})
}

// Next completes the current page and moves to the following page.
func (n *Navigator) Next() Outcome {
	cur := n.current
	if cur == nil {
		return InvalidTransition
	}
	if !cur.ReadyToComplete() {
		logger.Debug("Next blocked: %s is not ready to complete", cur.ID())
		return Blocked
	}
	return n.advance(cur)
}

// ForceNext moves forward without checking readiness.
func (n *Navigator) ForceNext() Outcome {
	if n.current == nil {
		return InvalidTransition
	}
	return n.advance(n.current)
}

func (n *Navigator) advance(cur *Page) Outcome {
	next := n.pages.Next(cur)
	if next == nil {
		logger.Debug("Next ignored: %s is the last page", cur.ID())
		return InvalidTransition
	}
	cur.SetCompleted(true)
	n.SetCurrentPage(next)
	return Moved
}

// Previous moves back one page. Moving back never requires completion.
func (n *Navigator) Previous() Outcome {
	if n.current == nil {
		return InvalidTransition
	}
	prev := n.pages.Previous(n.current)
	if prev == nil {
		return InvalidTransition
	}
	n.SetCurrentPage(prev)
	return Moved
}

// GoTo jumps to any registered page by id.
func (n *Navigator) GoTo(id string) error {
	p, err := n.pages.ByID(id)
	if err != nil {
		return err
	}
	n.SetCurrentPage(p)
	return nil
}

// Finish completes the last page and closes the host.
func (n *Navigator) Finish() Outcome {
	cur := n.current
	if cur == nil {
		return InvalidTransition
	}
	if !cur.ReadyToComplete() {
		logger.Debug("Finish blocked: %s is not ready to complete", cur.ID())
		return Blocked
	}
	return n.finish(cur)
}

// ForceFinish finishes from the last page without checking readiness.
func (n *Navigator) ForceFinish() Outcome {
	if n.current == nil {
		return InvalidTransition
	}
	return n.finish(n.current)
}

func (n *Navigator) finish(cur *Page) Outcome {
	if cur != n.pages.Last() {
		logger.Debug("Finish ignored: %s is not the last page", cur.ID())
		return InvalidTransition
	}
	cur.SetCompleted(true)
	n.bus.emit(Event{Kind: EventFinish, PageID: cur.ID()})
	n.host.Close()
	return Finished
}

// Cancel emits the page and wizard cancel events, then closes the host
// unless the current page has StopCancel set.
func (n *Navigator) Cancel() Outcome {
	cur := n.current
	var pageID string
	if cur != nil {
		pageID = cur.ID()
		cur.notify(Event{Kind: EventPageCancel})
	}
	n.bus.emit(Event{Kind: EventCancel, PageID: pageID})

	if cur != nil && cur.StopCancel() {
		logger.Debug("Cancel stopped by %s", pageID)
		return CancelStopped
	}
	n.host.Close()
	return Closed
}

// Reset clears every page's completion and returns to the first page.
func (n *Navigator) Reset() {
	for _, p := range n.pages.pages {
		p.SetCompleted(false)
	}
	if first := n.pages.First(); first != nil {
		n.SetCurrentPage(first)
	}
}

// attach wires a freshly inserted page and claims currency when idle.
func (n *Navigator) attach(p *Page) {
	p.nav = n
	if n.current == nil {
		n.SetCurrentPage(p)
	}
}

// detach is called after p left the collection at index. A removed current
// page is replaced by the page that took its slot, else its predecessor.
func (n *Navigator) detach(p *Page, index int) {
	wasCurrent := n.current == p
	p.nav = nil
	if !wasCurrent {
		return
	}

	pages := n.pages.pages
	switch {
	case index < len(pages):
		n.SetCurrentPage(pages[index])
	case len(pages) > 0:
		n.SetCurrentPage(pages[len(pages)-1])
	default:
		n.current = nil
		logger.Debug("Last page removed, navigator idle")
	}
}
