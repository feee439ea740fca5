package wizard

import (
	"github.com/mark3labs/stepwise/internal/logger"
)

// CommitAction is a forward-progress request subject to commit.
type CommitAction int

const (
	CommitNext   CommitAction = iota // advance
	CommitDanger                     // destructive confirm: finish on the last page, next elsewhere
	CommitFinish                     // finish
)

// CommitPipeline fires a cancellable commit event on the current page before
// handing forward-progress requests to the navigator.
type CommitPipeline struct {
	nav *Navigator
}

// NewCommitPipeline creates a pipeline in front of nav.
func NewCommitPipeline(nav *Navigator) *CommitPipeline {
	return &CommitPipeline{nav: nav}
}

// Request emits the commit event and, unless a listener prevents it,
// forwards to Next or Finish. The commit event fires before readiness is
// checked so listeners see attempts on pages that end up blocked.
func (c *CommitPipeline) Request(action CommitAction) Outcome {
	cur := c.nav.CurrentPage()
	if cur == nil {
		return InvalidTransition
	}

	prevented := false
	cur.notify(Event{Kind: EventCommit, veto: &prevented})
	if prevented {
		logger.Debug("Commit on %s prevented by listener", cur.ID())
		return Vetoed
	}

	switch action {
	case CommitFinish:
		return c.nav.Finish()
	case CommitDanger:
		if c.nav.IsLast() {
			return c.nav.Finish()
		}
		return c.nav.Next()
	default:
		return c.nav.Next()
	}
}
