package wizard

import "strconv"

// HeaderAction is a clickable action shown in the wizard or page header.
type HeaderAction struct {
	ID    string
	Label string
}

// PageOptions declares a page at registration time.
type PageOptions struct {
	ID                   string // custom id, empty for the ordinal fallback
	Title                string
	NavTitle             string // defaults to Title
	Body                 string // markdown content, opaque to the engine
	HeaderActions        []HeaderAction
	Buttons              []Button // page-level overrides, active only while current
	NextStepDisabled     bool
	PreviousStepDisabled bool
	StopCancel           bool
}

// Page is the per-page state record. Derived properties (Enabled, Completed,
// ReadyToComplete, ...) are computed on every read, never cached.
type Page struct {
	ordinal  int
	prefix   string
	customID string

	title         string
	navTitle      string
	body          string
	headerActions []HeaderAction
	buttons       []Button

	nextStepDisabled     bool
	previousStepDisabled bool
	stopCancel           bool
	completed            bool // stored flag, see Completed

	nav *Navigator // nil once removed
	bus bus
}

func newPage(ordinal int, prefix string, opts PageOptions) *Page {
	return &Page{
		ordinal:              ordinal,
		prefix:               prefix,
		customID:             opts.ID,
		title:                opts.Title,
		navTitle:             opts.NavTitle,
		body:                 opts.Body,
		headerActions:        append([]HeaderAction(nil), opts.HeaderActions...),
		buttons:              append([]Button(nil), opts.Buttons...),
		nextStepDisabled:     opts.NextStepDisabled,
		previousStepDisabled: opts.PreviousStepDisabled,
		stopCancel:           opts.StopCancel,
	}
}

// ID returns prefix+customID, or prefix+ordinal when no custom id is set.
func (p *Page) ID() string {
	if p.customID != "" {
		return p.prefix + p.customID
	}
	return p.prefix + strconv.Itoa(p.ordinal)
}

// Ordinal returns the 1-based registration index. It is never reused.
func (p *Page) Ordinal() int {
	return p.ordinal
}

// CustomID returns the custom id suffix, empty when the ordinal is in use.
func (p *Page) CustomID() string {
	return p.customID
}

// SetCustomID replaces the custom id. An empty id reverts to the ordinal.
func (p *Page) SetCustomID(id string) {
	p.customID = id
}

// Title returns the page title.
func (p *Page) Title() string {
	return p.title
}

// NavTitle returns the step-nav title, falling back to Title.
func (p *Page) NavTitle() string {
	if p.navTitle != "" {
		return p.navTitle
	}
	return p.title
}

// Body returns the page content.
func (p *Page) Body() string {
	return p.body
}

// HeaderActions returns the page header actions, nil when absent.
func (p *Page) HeaderActions() []HeaderAction {
	return p.headerActions
}

// HasHeaderActions reports whether the page declares header actions.
func (p *Page) HasHeaderActions() bool {
	return len(p.headerActions) > 0
}

// Buttons returns the page-level button overrides, nil when absent.
func (p *Page) Buttons() []Button {
	return p.buttons
}

// HasButtons reports whether the page declares its own buttons.
func (p *Page) HasButtons() bool {
	return len(p.buttons) > 0
}

// NextStepDisabled reports whether forward progress is blocked.
func (p *Page) NextStepDisabled() bool {
	return p.nextStepDisabled
}

// SetNextStepDisabled updates the flag and notifies when the value changes.
func (p *Page) SetNextStepDisabled(v bool) {
	if p.nextStepDisabled == v {
		return
	}
	p.nextStepDisabled = v
	p.notify(Event{Kind: EventNextStepDisabledChange, Value: v})
}

// PreviousStepDisabled reports whether the previous button is disabled for this page.
func (p *Page) PreviousStepDisabled() bool {
	return p.previousStepDisabled
}

// SetPreviousStepDisabled updates the flag and notifies when the value changes.
func (p *Page) SetPreviousStepDisabled(v bool) {
	if p.previousStepDisabled == v {
		return
	}
	p.previousStepDisabled = v
	p.notify(Event{Kind: EventPreviousStepDisabledChange, Value: v})
}

// StopCancel reports whether cancelling on this page keeps the host open.
func (p *Page) StopCancel() bool {
	return p.stopCancel
}

// SetStopCancel updates the flag and notifies when the value changes.
func (p *Page) SetStopCancel(v bool) {
	if p.stopCancel == v {
		return
	}
	p.stopCancel = v
	p.notify(Event{Kind: EventStopCancelChange, Value: v})
}

// ReadyToComplete reports whether the page may be completed.
func (p *Page) ReadyToComplete() bool {
	return !p.nextStepDisabled
}

// Completed returns the stored flag revoked by the current readiness.
func (p *Page) Completed() bool {
	return p.completed && p.ReadyToComplete()
}

// SetCompleted stores the completion flag.
func (p *Page) SetCompleted(v bool) {
	p.completed = v
}

// Current reports whether this page is the navigator's current page.
func (p *Page) Current() bool {
	return p.nav != nil && p.nav.current == p
}

// PreviousCompleted is true when there is no previous page or it is completed.
func (p *Page) PreviousCompleted() bool {
	prev := p.previous()
	return prev == nil || prev.Completed()
}

// Enabled reports whether the page can be jumped to from the step nav.
func (p *Page) Enabled() bool {
	return p.Current() || p.Completed() || p.PreviousCompleted()
}

// Disabled is the negation of Enabled.
func (p *Page) Disabled() bool {
	return !p.Enabled()
}

// StepIndicatorID returns the id of the step-nav entry labelling this page.
func (p *Page) StepIndicatorID() string {
	if p.nav == nil {
		return stepIndicatorID(p)
	}
	return p.nav.pages.StepIndicatorID(p)
}

// MakeCurrent asks the navigator to make this page current.
func (p *Page) MakeCurrent() {
	if p.nav != nil {
		p.nav.SetCurrentPage(p)
	}
}

// Subscribe registers a listener for this page's notifications only.
func (p *Page) Subscribe(fn Listener) func() {
	return p.bus.subscribe(fn)
}

func (p *Page) previous() *Page {
	if p.nav == nil {
		return nil
	}
	return p.nav.pages.Previous(p)
}

// notify delivers a page-scoped event to page listeners, then wizard listeners.
func (p *Page) notify(e Event) {
	e.PageID = p.ID()
	p.bus.emit(e)
	if p.nav != nil {
		p.nav.bus.emit(e)
	}
}
