// Package wizard is the navigation and state engine of a multi-step wizard:
// the page registry, the current-page state machine, the commit pipeline
// and button routing. It is synchronous and single-threaded; callers that
// drive it from several goroutines must serialize access themselves.
package wizard

import (
	"fmt"

	"github.com/mark3labs/stepwise/internal/logger"
)

// Wizard wires the page collection, navigator, commit pipeline and button
// router of one wizard instance.
type Wizard struct {
	title         string
	headerActions []HeaderAction

	pages   *PageCollection
	nav     *Navigator
	commit  *CommitPipeline
	buttons *ButtonRouter
}

// Option configures a Wizard.
type Option func(*options)

type options struct {
	title         string
	prefix        string
	host          Host
	buttons       []Button
	headerActions []HeaderAction
}

// WithTitle sets the wizard title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithIDPrefix sets the page id prefix (default DefaultIDPrefix).
func WithIDPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithHost sets the host shell (default a closed ModalHost).
func WithHost(h Host) Option {
	return func(o *options) { o.host = h }
}

// WithButtons sets the wizard-level default buttons.
func WithButtons(buttons ...Button) Option {
	return func(o *options) { o.buttons = buttons }
}

// WithHeaderActions sets the wizard-level header actions.
func WithHeaderActions(actions ...HeaderAction) Option {
	return func(o *options) { o.headerActions = actions }
}

// DefaultButtons is the cancel/previous/next/finish set used when none is given.
func DefaultButtons() []Button {
	return []Button{
		{Type: ButtonCancel, Label: "Cancel"},
		{Type: ButtonPrevious, Label: "Back"},
		{Type: ButtonNext, Label: "Next"},
		{Type: ButtonFinish, Label: "Finish"},
	}
}

// New creates an empty wizard. Pages are registered with AddPage.
func New(opts ...Option) *Wizard {
	o := options{prefix: DefaultIDPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.buttons == nil {
		o.buttons = DefaultButtons()
	}

	pages := NewPageCollection(o.prefix)
	nav := NewNavigator(pages, o.host)
	commit := NewCommitPipeline(nav)
	return &Wizard{
		title:         o.title,
		headerActions: o.headerActions,
		pages:         pages,
		nav:           nav,
		commit:        commit,
		buttons:       NewButtonRouter(nav, commit, o.buttons),
	}
}

// Title returns the wizard title.
func (w *Wizard) Title() string { return w.title }

// HeaderActions returns the wizard-level header actions.
func (w *Wizard) HeaderActions() []HeaderAction { return w.headerActions }

// Pages returns the page collection.
func (w *Wizard) Pages() *PageCollection { return w.pages }

// Navigator returns the navigation engine.
func (w *Wizard) Navigator() *Navigator { return w.nav }

// Commit returns the commit pipeline.
func (w *Wizard) Commit() *CommitPipeline { return w.commit }

// Buttons returns the button router.
func (w *Wizard) Buttons() *ButtonRouter { return w.buttons }

// Host returns the host shell.
func (w *Wizard) Host() Host { return w.nav.host }

// AddPage registers a page at the end of the collection. The first page
// registered while nothing is current becomes current.
func (w *Wizard) AddPage(opts PageOptions) *Page {
	return w.InsertPage(-1, opts)
}

// InsertPage registers a page at index (append when out of range).
func (w *Wizard) InsertPage(index int, opts PageOptions) *Page {
	p := w.pages.insert(index, opts)
	logger.Debug("Registered page %s at %d", p.ID(), w.pages.IndexOf(p))
	w.nav.attach(p)
	return p
}

// RemovePage deregisters p. If p was current the navigator moves to a
// neighbor, or becomes idle when no page is left.
func (w *Wizard) RemovePage(p *Page) error {
	index := w.pages.remove(p)
	if index < 0 {
		return fmt.Errorf("removing page: %w", ErrPageNotRegistered)
	}
	logger.Debug("Removed page %s", p.ID())
	w.nav.detach(p, index)
	return nil
}

// Open opens the host.
func (w *Wizard) Open() { w.nav.host.Open() }

// IsOpen reports whether the host is open.
func (w *Wizard) IsOpen() bool { return w.nav.host.IsOpen() }

// CurrentPage returns the current page, nil when idle.
func (w *Wizard) CurrentPage() *Page { return w.nav.CurrentPage() }

// SetCurrentPage makes p current.
func (w *Wizard) SetCurrentPage(p *Page) { w.nav.SetCurrentPage(p) }

// Next advances through the commit pipeline.
func (w *Wizard) Next() Outcome { return w.commit.Request(CommitNext) }

// Previous moves back one page.
func (w *Wizard) Previous() Outcome { return w.nav.Previous() }

// GoTo jumps to the page with the given id.
func (w *Wizard) GoTo(id string) error { return w.nav.GoTo(id) }

// Finish finishes through the commit pipeline.
func (w *Wizard) Finish() Outcome { return w.commit.Request(CommitFinish) }

// Cancel cancels the wizard.
func (w *Wizard) Cancel() Outcome { return w.nav.Cancel() }

// Reset clears completion and returns to the first page.
func (w *Wizard) Reset() { w.nav.Reset() }

// Click dispatches a button click.
func (w *Wizard) Click(buttonType string) Outcome { return w.buttons.Click(buttonType) }

// Subscribe registers a listener for every notification of the wizard.
func (w *Wizard) Subscribe(fn Listener) func() { return w.nav.Subscribe(fn) }
