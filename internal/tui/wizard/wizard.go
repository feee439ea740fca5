// Package wizard is the terminal front end of the wizard engine: a
// bubbletea program with a step list, a markdown page body and a button
// bar whose keys are routed into the engine.
package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/state"
	"github.com/mark3labs/stepwise/internal/tui/theme"
	engine "github.com/mark3labs/stepwise/internal/wizard"
)

// Result describes how the program ended.
type Result struct {
	Finished  bool   // finish closed the wizard
	Cancelled bool   // cancel closed the wizard, or ctrl+c
	PageID    string // current page when the program ended
}

// Options configures the model.
type Options struct {
	// DataDir is where UI preferences are persisted. Empty disables persistence.
	DataDir string
}

// Model is the BubbleTea model driving one wizard.
type Model struct {
	wiz     *engine.Wizard
	keys    KeyMap
	body    viewport.Model
	shown   *engine.Page // page whose body is in the viewport
	focus   string       // focused button type
	showNav bool
	dataDir string

	status    string
	statusErr bool

	width  int
	height int

	result      Result
	done        bool
	unsubscribe func()
}

// NewModel opens w and wraps it in a model.
func NewModel(w *engine.Wizard, opts Options) *Model {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	showNav := true
	if opts.DataDir != "" {
		showNav = state.Load(opts.DataDir).StepNav.Visible
	}

	m := &Model{
		wiz:     w,
		keys:    DefaultKeyMap(),
		body:    vp,
		showNav: showNav,
		dataDir: opts.DataDir,
		width:   100,
		height:  30,
	}
	m.unsubscribe = w.Subscribe(m.onEvent)

	w.Open()
	m.refreshPage()
	return m
}

// RunWizard runs w in a standalone BubbleTea program until it finishes or
// is cancelled.
func RunWizard(w *engine.Wizard, opts Options) (*Result, error) {
	m := NewModel(w, opts)
	defer m.Close()

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	final, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return &final.result, nil
}

// Close detaches the model from the wizard.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Result returns the outcome so far.
func (m *Model) Result() Result {
	return m.result
}

// Done reports whether the wizard was closed.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) onEvent(e engine.Event) {
	switch e.Kind {
	case engine.EventLoad:
		m.refreshPage()
	case engine.EventFinish:
		m.result.Finished = true
	}
}

// refreshPage loads the current page body and resets focus when the page changed.
func (m *Model) refreshPage() {
	cur := m.wiz.CurrentPage()
	if cur == m.shown {
		return
	}
	m.shown = cur
	m.focus = m.defaultFocus()
	if cur != nil {
		m.body.SetContent(renderMarkdown(cur.Body(), m.body.Width()))
	} else {
		m.body.SetContent("")
	}
	m.body.GotoTop()
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSize()
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	router := m.wiz.Buttons()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.result.Cancelled = true
		return m.quit(), true

	case key.Matches(msg, m.keys.Next):
		return m.press(m.primaryType()), true

	case key.Matches(msg, m.keys.Previous):
		return m.press(engine.ButtonPrevious), true

	case key.Matches(msg, m.keys.Cancel):
		return m.press(engine.ButtonCancel), true

	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)
		return nil, true

	case key.Matches(msg, m.keys.FocusPrevious):
		m.moveFocus(-1)
		return nil, true

	case key.Matches(msg, m.keys.Activate):
		if m.focus == "" {
			return nil, true
		}
		return m.press(m.focus), true

	case key.Matches(msg, m.keys.HeaderAction):
		if action, ok := m.headerAction(); ok {
			router.ClickHeaderAction(action.ID)
			m.setStatus(action.Label, false)
		}
		return nil, true

	case key.Matches(msg, m.keys.ToggleNav):
		m.toggleNav()
		return nil, true
	}

	if n := msg.String(); len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
		m.jump(int(n[0] - '1'))
		return nil, true
	}

	return nil, false
}

// press clicks a button after checking its derived state. Disabled and
// hidden buttons cannot be pressed from the keyboard.
func (m *Model) press(buttonType string) tea.Cmd {
	router := m.wiz.Buttons()
	b, ok := router.Active(buttonType)
	if !ok || router.IsHidden(buttonType) {
		return nil
	}
	if router.IsDisabled(buttonType) {
		m.setStatus(fmt.Sprintf("%s is not available on this page", b.Label), true)
		return nil
	}

	m.setStatus("", false)
	outcome := m.wiz.Click(buttonType)
	logger.Debug("Button %s: %s", buttonType, outcome)

	switch outcome {
	case engine.Blocked:
		m.setStatus("This page is not complete yet", true)
	case engine.Vetoed:
		m.setStatus("The page kept the wizard from moving on", true)
	case engine.CancelStopped:
		m.setStatus("Cancel is not allowed on this page", true)
	case engine.Closed:
		m.result.Cancelled = true
	}

	if !m.wiz.IsOpen() {
		return m.quit()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.done = true
	if cur := m.wiz.CurrentPage(); cur != nil {
		m.result.PageID = cur.ID()
	}
	return tea.Quit
}

// primaryType picks the forward button: finish on the last page, next
// elsewhere, danger when the page only offers that.
func (m *Model) primaryType() string {
	router := m.wiz.Buttons()
	want := engine.ButtonNext
	if m.wiz.Navigator().IsLast() {
		want = engine.ButtonFinish
	}
	if _, ok := router.Active(want); ok {
		return want
	}
	return engine.ButtonDanger
}

func (m *Model) defaultFocus() string {
	for _, b := range buttonsFor(m.wiz.Buttons(), "") {
		if b.Type == m.primaryType() && b.State != ButtonDisabled {
			return b.Type
		}
	}
	return ""
}

// moveFocus cycles focus through the enabled visible buttons.
func (m *Model) moveFocus(delta int) {
	var enabled []string
	for _, b := range buttonsFor(m.wiz.Buttons(), "") {
		if b.State != ButtonDisabled {
			enabled = append(enabled, b.Type)
		}
	}
	if len(enabled) == 0 {
		m.focus = ""
		return
	}

	idx := -1
	for i, t := range enabled {
		if t == m.focus {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta > 0 {
			m.focus = enabled[0]
		} else {
			m.focus = enabled[len(enabled)-1]
		}
		return
	}
	m.focus = enabled[(idx+delta+len(enabled))%len(enabled)]
}

// jump makes the page at index current if the step list allows it.
func (m *Model) jump(index int) {
	pages := m.wiz.Pages().Pages()
	if index < 0 || index >= len(pages) {
		return
	}
	p := pages[index]
	if p.Disabled() {
		m.setStatus(fmt.Sprintf("Step %d is not reachable yet", index+1), true)
		return
	}
	m.setStatus("", false)
	if err := m.wiz.GoTo(p.ID()); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *Model) headerAction() (engine.HeaderAction, bool) {
	if cur := m.wiz.CurrentPage(); cur != nil && cur.HasHeaderActions() {
		return cur.HeaderActions()[0], true
	}
	if actions := m.wiz.HeaderActions(); len(actions) > 0 {
		return actions[0], true
	}
	return engine.HeaderAction{}, false
}

func (m *Model) toggleNav() {
	m.showNav = !m.showNav
	m.updateSize()
	if m.dataDir == "" {
		return
	}
	st := state.Load(m.dataDir)
	st.StepNav.Visible = m.showNav
	if err := state.Save(m.dataDir, st); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// modalWidth returns the modal width for the current terminal size.
func (m *Model) modalWidth() int {
	w := m.width - 10
	if w < 60 {
		w = 60
	}
	if w > 110 {
		w = 110
	}
	return w
}

// contentWidth is the width of the page panel inside the modal.
func (m *Model) contentWidth() int {
	w := m.modalWidth() - 6 // border and padding
	if m.showNav {
		w -= stepNavWidth + 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) updateSize() {
	h := m.height - 16
	if h < 5 {
		h = 5
	}
	m.body.SetWidth(m.contentWidth())
	m.body.SetHeight(h)
	if cur := m.wiz.CurrentPage(); cur != nil {
		m.body.SetContent(renderMarkdown(cur.Body(), m.contentWidth()))
	}
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render draws the modal as a string.
func (m *Model) render() string {
	s := theme.Current().S()
	width := m.contentWidth()

	var panel []string
	if cur := m.wiz.CurrentPage(); cur != nil {
		panel = append(panel, s.PageTitle.Render(cur.Title()), "")
		panel = append(panel, m.body.View())
	} else {
		panel = append(panel, s.StepDisabled.Render("This wizard has no pages"))
	}

	panel = append(panel, "")
	if m.status != "" {
		style := s.StatusWarning
		if m.statusErr {
			style = s.StatusError
		}
		panel = append(panel, style.Render(m.status))
	} else {
		panel = append(panel, "")
	}

	bar := NewButtonBar(buttonsFor(m.wiz.Buttons(), m.focus))
	bar.SetWidth(width)
	panel = append(panel, bar.Render())

	content := strings.Join(panel, "\n")
	if m.showNav {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			renderStepNav(m.wiz.Pages().Pages()),
			"  ",
			content,
		)
	}

	sections := []string{
		m.renderHeader(),
		"",
		content,
		"",
		renderHintBar(m.keys.hints()...),
	}

	modal := s.ModalContainer.Width(m.modalWidth()).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) renderHeader() string {
	s := theme.Current().S()
	title := m.wiz.Title()
	if title == "" {
		title = "Wizard"
	}

	pages := m.wiz.Pages()
	step := ""
	if cur := m.wiz.CurrentPage(); cur != nil {
		step = fmt.Sprintf(" - Step %d of %d", pages.IndexOf(cur)+1, pages.Len())
	}
	left := s.HeaderTitle.Render(title + step)

	var actions []string
	for _, a := range m.wiz.HeaderActions() {
		actions = append(actions, s.HeaderAction.Render("["+a.Label+"]"))
	}
	if cur := m.wiz.CurrentPage(); cur != nil {
		for _, a := range cur.HeaderActions() {
			actions = append(actions, s.HeaderAction.Render("["+a.Label+"]"))
		}
	}
	if len(actions) == 0 {
		return left
	}

	right := strings.Join(actions, " ")
	gap := m.modalWidth() - 6 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
