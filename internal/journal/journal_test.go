package journal

import (
	"context"
	"testing"

	"github.com/mark3labs/stepwise/internal/nats"
	"github.com/mark3labs/stepwise/internal/wizard"
	"github.com/stretchr/testify/require"
)

func setupJournal(t *testing.T) *Journal {
	t.Helper()
	ctx := context.Background()

	store, err := nats.Open(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(store.JetStream(), store.Stream())
}

func TestJournal_AttachAndLoad(t *testing.T) {
	ctx := context.Background()
	j := setupJournal(t)

	w := wizard.New()
	w.AddPage(wizard.PageOptions{ID: "one", Title: "One"})
	w.AddPage(wizard.PageOptions{ID: "two", Title: "Two"})
	w.Open()

	require.NoError(t, j.Start(ctx, "demo"))
	detach := j.Attach(ctx, w, "demo")

	require.Equal(t, wizard.Moved, w.Click(wizard.ButtonNext))
	require.Equal(t, wizard.Moved, w.Click(wizard.ButtonPrevious))
	require.Equal(t, wizard.Moved, w.Next())
	require.Equal(t, wizard.Finished, w.Finish())
	detach()

	// Not journaled after detach
	w.Reset()

	summary, err := j.Load(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, "demo", summary.Wizard)
	require.Equal(t, 1, summary.Runs)
	require.Equal(t, 2, summary.Visits["wizard-page-two"])
	require.Equal(t, 1, summary.Visits["wizard-page-one"])
	require.Equal(t, 3, summary.Commits)
	require.Equal(t, 1, summary.Finishes)
	require.Zero(t, summary.Cancels)
	require.False(t, summary.LastEvent.IsZero())

	first := summary.Records[0]
	require.Equal(t, KindRunStart, first.Kind)
	require.Equal(t, "1", first.ID)

	second := summary.Records[1]
	require.Equal(t, string(wizard.EventNextClicked), second.Kind)
	require.Equal(t, "wizard-page-one", second.PageID)
}

func TestJournal_RecordOutcome(t *testing.T) {
	ctx := context.Background()
	j := setupJournal(t)

	require.NoError(t, j.RecordOutcome(ctx, "demo", "next", "wizard-page-1", wizard.Vetoed))
	require.NoError(t, j.RecordOutcome(ctx, "demo", "next", "wizard-page-1", wizard.Blocked))
	require.NoError(t, j.RecordOutcome(ctx, "demo", "next", "wizard-page-1", wizard.Moved))

	summary, err := j.Load(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, 1, summary.Vetoes)
	require.Equal(t, 1, summary.Blocked)
	require.Len(t, summary.Records, 3)
	require.Equal(t, "moved", summary.Records[2].Outcome)
}

func TestJournal_LoadIsolatesWizards(t *testing.T) {
	ctx := context.Background()
	j := setupJournal(t)

	require.NoError(t, j.Start(ctx, "alpha"))
	require.NoError(t, j.Start(ctx, "alpha"))
	require.NoError(t, j.Start(ctx, "beta"))

	alpha, err := j.Load(ctx, "alpha")
	require.NoError(t, err)
	require.Equal(t, 2, alpha.Runs)

	empty, err := j.Load(ctx, "gamma")
	require.NoError(t, err)
	require.Zero(t, empty.Runs)
	require.Empty(t, empty.Records)
}

func TestSummary_Apply(t *testing.T) {
	s := NewSummary("demo")

	s.Apply(Record{Kind: string(wizard.EventLoad), PageID: "p"})
	s.Apply(Record{Kind: string(wizard.EventCancel)})
	s.Apply(Record{Kind: string(wizard.EventCustomClicked), ButtonType: "custom-x"})

	require.Equal(t, 1, s.Visits["p"])
	require.Equal(t, 1, s.Cancels)
	require.Len(t, s.Records, 3)
}
