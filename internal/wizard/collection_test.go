package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageCollection_Empty(t *testing.T) {
	c := NewPageCollection("")

	require.Equal(t, DefaultIDPrefix, c.Prefix())
	require.Equal(t, 0, c.Len())
	require.Nil(t, c.First())
	require.Nil(t, c.Last())
	require.Empty(t, c.Pages())

	_, err := c.ByID("wizard-page-1")
	require.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageCollection_SinglePage(t *testing.T) {
	w := New()
	only := w.AddPage(PageOptions{Title: "Only"})
	c := w.Pages()

	require.Same(t, only, c.First())
	require.Same(t, only, c.Last())
	require.Nil(t, c.Previous(only))
	require.Nil(t, c.Next(only))
}

func TestPageCollection_Neighbors(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 3)
	c := pages[0].nav.Pages()

	require.Nil(t, c.Previous(pages[0]))
	require.Same(t, pages[1], c.Next(pages[0]))
	require.Same(t, pages[0], c.Previous(pages[1]))
	require.Same(t, pages[2], c.Next(pages[1]))
	require.Nil(t, c.Next(pages[2]))

	stranger := newPage(99, DefaultIDPrefix, PageOptions{})
	require.Nil(t, c.Previous(stranger))
	require.Nil(t, c.Next(stranger))
	require.Equal(t, -1, c.IndexOf(stranger))
}

func TestPageCollection_ByID(t *testing.T) {
	w := New()
	w.AddPage(PageOptions{Title: "One"})
	custom := w.AddPage(PageOptions{ID: "ohai", Title: "Two"})
	c := w.Pages()

	p, err := c.ByID("wizard-page-ohai")
	require.NoError(t, err)
	require.Same(t, custom, p)

	_, err = c.ByID("wizard-page-2")
	require.ErrorIs(t, err, ErrPageNotFound, "custom id replaces the ordinal id")
	require.Contains(t, err.Error(), "wizard-page-2")
}

func TestPageCollection_PagesIsACopy(t *testing.T) {
	_, pages, _, _ := newTestWizard(t, 2)
	c := pages[0].nav.Pages()

	list := c.Pages()
	list[0] = nil

	require.Same(t, pages[0], c.First())
}

func TestPageCollection_StepIndicatorID(t *testing.T) {
	tests := []struct {
		prefix   string
		customID string
		want     string
	}{
		{"wizard-page-", "", "wizard-step-1"},
		{"wizard-page-", "ohai", "wizard-step-ohai"},
		{"clr-wizard-page-", "", "clr-wizard-step-1"},
		{"pg-", "", "pg-step-1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			w := New(WithIDPrefix(tt.prefix))
			p := w.AddPage(PageOptions{ID: tt.customID, Title: "Page"})
			require.Equal(t, tt.want, w.Pages().StepIndicatorID(p))
		})
	}
}
