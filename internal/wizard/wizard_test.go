package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder captures every notification of a wizard in order.
type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

// newTestWizard builds an open wizard with n untitled pages.
func newTestWizard(t *testing.T, n int) (*Wizard, []*Page, *ModalHost, *recorder) {
	t.Helper()
	host := NewModalHost()
	w := New(WithHost(host), WithTitle("Test Wizard"))
	rec := &recorder{}
	w.Subscribe(rec.listen)

	pages := make([]*Page, 0, n)
	for i := 0; i < n; i++ {
		pages = append(pages, w.AddPage(PageOptions{Title: "Page"}))
	}
	w.Open()
	rec.reset()
	return w, pages, host, rec
}

func TestNew_Defaults(t *testing.T) {
	w := New()

	require.Nil(t, w.CurrentPage(), "empty wizard is idle")
	require.Equal(t, DefaultIDPrefix, w.Pages().Prefix())
	require.Equal(t, DefaultButtons(), w.Buttons().Defaults())
	require.False(t, w.IsOpen())
}

func TestAddPage_FirstRegisteredBecomesCurrent(t *testing.T) {
	w := New()
	rec := &recorder{}
	w.Subscribe(rec.listen)

	first := w.AddPage(PageOptions{Title: "One"})
	second := w.AddPage(PageOptions{Title: "Two"})

	require.Same(t, first, w.CurrentPage())
	require.False(t, second.Current())
	require.Equal(t, []EventKind{EventLoad}, rec.kinds(), "only the first registration claims currency")
	require.Equal(t, first.ID(), rec.events[0].PageID)
}

func TestAddPage_ExistingCurrentIsKept(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 2)
	w.SetCurrentPage(pages[1])

	w.AddPage(PageOptions{Title: "Late"})

	require.Same(t, pages[1], w.CurrentPage())
}

func TestInsertPage_Position(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 2)

	inserted := w.InsertPage(1, PageOptions{Title: "Middle"})

	require.Equal(t, []*Page{pages[0], inserted, pages[1]}, w.Pages().Pages())
	require.Equal(t, 3, inserted.Ordinal(), "ordinal follows registration, not position")
	require.Equal(t, "wizard-page-3", inserted.ID())
}

func TestRemovePage_CurrentMovesToFollowingPage(t *testing.T) {
	w, pages, _, rec := newTestWizard(t, 3)
	w.SetCurrentPage(pages[1])
	rec.reset()

	require.NoError(t, w.RemovePage(pages[1]))

	require.Same(t, pages[2], w.CurrentPage())
	require.False(t, pages[1].Current())
	require.Equal(t, []EventKind{EventLoad}, rec.kinds())
}

func TestRemovePage_LastCurrentMovesToPredecessor(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 3)
	w.SetCurrentPage(pages[2])

	require.NoError(t, w.RemovePage(pages[2]))

	require.Same(t, pages[1], w.CurrentPage())
}

func TestRemovePage_EmptyCollectionGoesIdle(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 1)

	require.NoError(t, w.RemovePage(pages[0]))

	require.Nil(t, w.CurrentPage())
	require.Equal(t, 0, w.Pages().Len())

	// A new registration claims currency again
	again := w.AddPage(PageOptions{Title: "Again"})
	require.Same(t, again, w.CurrentPage())
	require.Equal(t, "wizard-page-2", again.ID(), "ordinals are never reused")
}

func TestRemovePage_NonCurrentKeepsCurrent(t *testing.T) {
	w, pages, _, rec := newTestWizard(t, 3)

	require.NoError(t, w.RemovePage(pages[2]))

	require.Same(t, pages[0], w.CurrentPage())
	require.Empty(t, rec.events)
}

func TestRemovePage_Unregistered(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 2)
	require.NoError(t, w.RemovePage(pages[1]))

	err := w.RemovePage(pages[1])
	require.ErrorIs(t, err, ErrPageNotRegistered)
}

func TestWizard_ExactlyOneCurrentPage(t *testing.T) {
	w, pages, _, _ := newTestWizard(t, 4)

	check := func() {
		t.Helper()
		current := 0
		for _, p := range pages {
			if p.Current() {
				current++
			}
		}
		require.Equal(t, 1, current)
	}

	check()
	w.Next()
	check()
	w.Next()
	check()
	w.Previous()
	check()
	require.NoError(t, w.GoTo(pages[3].ID()))
	check()
	w.Reset()
	check()
}

func TestWizard_HeaderActions(t *testing.T) {
	w := New(WithHeaderActions(HeaderAction{ID: "help", Label: "?"}))
	require.Equal(t, []HeaderAction{{ID: "help", Label: "?"}}, w.HeaderActions())
}
