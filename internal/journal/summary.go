package journal

import (
	"time"

	"github.com/mark3labs/stepwise/internal/wizard"
)

// Summary is a wizard's history reduced from its journal.
type Summary struct {
	Wizard    string         `json:"wizard"`
	Runs      int            `json:"runs"`
	Visits    map[string]int `json:"visits"` // page id -> load count
	Commits   int            `json:"commits"`
	Vetoes    int            `json:"vetoes"`
	Blocked   int            `json:"blocked"`
	Finishes  int            `json:"finishes"`
	Cancels   int            `json:"cancels"`
	LastEvent time.Time      `json:"last_event"`
	Records   []Record       `json:"records"`
}

// NewSummary returns an empty summary for name.
func NewSummary(name string) *Summary {
	return &Summary{Wizard: name, Visits: make(map[string]int)}
}

// Apply folds one record into the summary.
func (s *Summary) Apply(rec Record) {
	s.Records = append(s.Records, rec)
	if rec.Timestamp.After(s.LastEvent) {
		s.LastEvent = rec.Timestamp
	}

	switch rec.Kind {
	case KindRunStart:
		s.Runs++
	case string(wizard.EventLoad):
		s.Visits[rec.PageID]++
	case string(wizard.EventCommit):
		s.Commits++
	case string(wizard.EventFinish):
		s.Finishes++
	case string(wizard.EventCancel):
		s.Cancels++
	case KindOutcome:
		switch rec.Outcome {
		case wizard.Vetoed.String():
			s.Vetoes++
		case wizard.Blocked.String():
			s.Blocked++
		}
	}
}
