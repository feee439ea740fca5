package wizard

// Built-in button types. Any other type is a custom button.
const (
	ButtonNext     = "next"
	ButtonPrevious = "previous"
	ButtonDanger   = "danger"
	ButtonFinish   = "finish"
	ButtonCancel   = "cancel"
)

// ButtonScope says where an active button definition came from.
type ButtonScope int

const (
	ScopeWizard ButtonScope = iota
	ScopePage
)

// String returns the string representation of a scope
func (s ButtonScope) String() string {
	if s == ScopePage {
		return "page"
	}
	return "wizard"
}

// Button is a button declaration.
type Button struct {
	Type     string
	Label    string
	Disabled bool // explicit flag, combined with page state in IsDisabled
}

// ActiveButton is a button resolved for the current page.
type ActiveButton struct {
	Button
	Scope ButtonScope
}

// IsPrimary reports whether clicks on this type go through the commit pipeline.
func IsPrimary(buttonType string) bool {
	switch buttonType {
	case ButtonNext, ButtonDanger, ButtonFinish:
		return true
	}
	return false
}

// IsCustom reports whether buttonType is not one of the built-in types.
func IsCustom(buttonType string) bool {
	switch buttonType {
	case ButtonNext, ButtonPrevious, ButtonDanger, ButtonFinish, ButtonCancel:
		return false
	}
	return true
}

// ButtonRouter resolves wizard-level defaults against the current page's
// overrides and dispatches clicks.
type ButtonRouter struct {
	nav      *Navigator
	commit   *CommitPipeline
	defaults []Button
}

// NewButtonRouter creates a router with the wizard-level default buttons.
func NewButtonRouter(nav *Navigator, commit *CommitPipeline, defaults []Button) *ButtonRouter {
	return &ButtonRouter{
		nav:      nav,
		commit:   commit,
		defaults: append([]Button(nil), defaults...),
	}
}

// Defaults returns the wizard-level buttons.
func (r *ButtonRouter) Defaults() []Button {
	return r.defaults
}

// SetDefaults replaces the wizard-level buttons.
func (r *ButtonRouter) SetDefaults(buttons []Button) {
	r.defaults = append([]Button(nil), buttons...)
}

// ActiveButtons returns the buttons in effect for the current page: wizard
// defaults in declaration order with same-type page overrides substituted,
// followed by page buttons whose type has no wizard default.
func (r *ButtonRouter) ActiveButtons() []ActiveButton {
	var overrides []Button
	if cur := r.nav.CurrentPage(); cur != nil {
		overrides = cur.Buttons()
	}

	used := make(map[int]bool, len(overrides))
	out := make([]ActiveButton, 0, len(r.defaults)+len(overrides))
	for _, def := range r.defaults {
		active := ActiveButton{Button: def, Scope: ScopeWizard}
		for i, o := range overrides {
			if !used[i] && o.Type == def.Type {
				active = ActiveButton{Button: o, Scope: ScopePage}
				used[i] = true
				break
			}
		}
		out = append(out, active)
	}
	for i, o := range overrides {
		if !used[i] {
			out = append(out, ActiveButton{Button: o, Scope: ScopePage})
		}
	}
	return out
}

// Active returns the button in effect for buttonType.
func (r *ButtonRouter) Active(buttonType string) (ActiveButton, bool) {
	for _, b := range r.ActiveButtons() {
		if b.Type == buttonType {
			return b, true
		}
	}
	return ActiveButton{}, false
}

// IsDisabled derives the disabled state of the active button of buttonType
// from its own flag and the current page.
func (r *ButtonRouter) IsDisabled(buttonType string) bool {
	b, ok := r.Active(buttonType)
	if !ok {
		return true
	}
	if b.Disabled {
		return true
	}
	if IsCustom(buttonType) || buttonType == ButtonCancel {
		return false
	}

	cur := r.nav.CurrentPage()
	if cur == nil {
		return true
	}
	switch buttonType {
	case ButtonPrevious:
		return r.nav.IsFirst() || cur.PreviousStepDisabled()
	case ButtonDanger:
		return !cur.ReadyToComplete()
	case ButtonNext:
		return r.nav.IsLast() || !cur.ReadyToComplete()
	case ButtonFinish:
		return !r.nav.IsLast() || !cur.ReadyToComplete()
	}
	return false
}

// IsHidden reports whether the button should not be shown for the current page.
func (r *ButtonRouter) IsHidden(buttonType string) bool {
	if _, ok := r.Active(buttonType); !ok {
		return true
	}
	switch buttonType {
	case ButtonNext:
		return r.nav.IsLast()
	case ButtonFinish:
		return !r.nav.IsLast()
	}
	return false
}

// Click dispatches a click on buttonType. Primary types emit their own click
// event and the primary event, then go through the commit pipeline.
// Disabled state is not enforced here; the engine's gates apply instead.
func (r *ButtonRouter) Click(buttonType string) Outcome {
	cur := r.nav.CurrentPage()

	switch buttonType {
	case ButtonNext:
		r.emitClick(cur, Event{Kind: EventNextClicked})
		r.emitClick(cur, Event{Kind: EventPrimaryClicked, ButtonType: buttonType})
		return r.commit.Request(CommitNext)
	case ButtonDanger:
		r.emitClick(cur, Event{Kind: EventDangerClicked})
		r.emitClick(cur, Event{Kind: EventPrimaryClicked, ButtonType: buttonType})
		return r.commit.Request(CommitDanger)
	case ButtonFinish:
		r.emitClick(cur, Event{Kind: EventFinishClicked})
		r.emitClick(cur, Event{Kind: EventPrimaryClicked, ButtonType: buttonType})
		return r.commit.Request(CommitFinish)
	case ButtonPrevious:
		r.emitClick(cur, Event{Kind: EventPreviousClicked})
		return r.nav.Previous()
	case ButtonCancel:
		return r.nav.Cancel()
	default:
		r.emitClick(cur, Event{Kind: EventCustomClicked, ButtonType: buttonType})
		return Emitted
	}
}

// ClickHeaderAction emits a header action click on the current page.
func (r *ButtonRouter) ClickHeaderAction(id string) {
	r.emitClick(r.nav.CurrentPage(), Event{Kind: EventHeaderActionClicked, ButtonType: id})
}

func (r *ButtonRouter) emitClick(cur *Page, e Event) {
	if cur != nil {
		cur.notify(e)
		return
	}
	r.nav.bus.emit(e)
}
