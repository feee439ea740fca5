// Package journal appends every wizard notification to a JetStream stream
// and replays a wizard's history into a Summary.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/nats"
	"github.com/mark3labs/stepwise/internal/wizard"
	"github.com/nats-io/nats.go/jetstream"
)

// Record kinds that are not wizard event kinds.
const (
	KindRunStart = "run_start" // a driver opened the wizard
	KindOutcome  = "outcome"   // result of a navigation request
)

// Record is one journal entry.
type Record struct {
	ID         string    `json:"id"` // stream sequence
	Timestamp  time.Time `json:"timestamp"`
	Wizard     string    `json:"wizard"`
	Kind       string    `json:"kind"`
	PageID     string    `json:"page_id,omitempty"`
	ButtonType string    `json:"button_type,omitempty"`
	Value      bool      `json:"value,omitempty"`
	Action     string    `json:"action,omitempty"`  // outcome records: the request
	Outcome    string    `json:"outcome,omitempty"` // outcome records: its result
}

// Journal publishes wizard records to JetStream.
type Journal struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// New creates a journal over an already set up stream.
func New(js jetstream.JetStream, stream jetstream.Stream) *Journal {
	return &Journal{js: js, stream: stream}
}

// Publish appends a record. Records are published to stepwise.{wizard}.{kind}.
func (j *Journal) Publish(ctx context.Context, rec Record) (*jetstream.PubAck, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	subject := nats.SubjectForEvent(rec.Wizard, rec.Kind)
	ack, err := j.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish record to subject %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish record: %w", err)
	}

	logger.Debug("Journaled %s for %s: seq=%d", rec.Kind, rec.Wizard, ack.Sequence)
	return ack, nil
}

// Start records that a run of the wizard began.
func (j *Journal) Start(ctx context.Context, name string) error {
	_, err := j.Publish(ctx, Record{Wizard: name, Kind: KindRunStart})
	return err
}

// RecordOutcome records the result of a navigation request made by a driver.
func (j *Journal) RecordOutcome(ctx context.Context, name, action string, pageID string, outcome wizard.Outcome) error {
	_, err := j.Publish(ctx, Record{
		Wizard:  name,
		Kind:    KindOutcome,
		PageID:  pageID,
		Action:  action,
		Outcome: outcome.String(),
	})
	return err
}

// Attach journals every notification of w under name and returns a function
// that stops journaling. Publish failures are logged, never surfaced to
// the wizard.
func (j *Journal) Attach(ctx context.Context, w *wizard.Wizard, name string) func() {
	return w.Subscribe(func(e wizard.Event) {
		rec := Record{
			Wizard:     name,
			Kind:       string(e.Kind),
			PageID:     e.PageID,
			ButtonType: e.ButtonType,
			Value:      e.Value,
		}
		if _, err := j.Publish(ctx, rec); err != nil {
			logger.Warn("Dropping journal record %s: %v", e.Kind, err)
		}
	})
}

// Load replays every record of the named wizard into a Summary.
func (j *Journal) Load(ctx context.Context, name string) (*Summary, error) {
	consumer, err := nats.CreateConsumer(ctx, j.stream, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	summary := NewSummary(name)

	const batchSize = 1000
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			meta, _ := msg.Metadata()

			var rec Record
			if err := json.Unmarshal(msg.Data(), &rec); err != nil {
				malformed++
				if meta != nil {
					logger.Warn("Skipping malformed record (seq=%d): %v", meta.Sequence.Stream, err)
				}
				_ = msg.Ack()
				continue
			}
			if rec.ID == "" && meta != nil {
				rec.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
			}

			summary.Apply(rec)
			_ = msg.Ack()
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: Skipped %d malformed journal records\n", malformed)
	}

	logger.Debug("Loaded journal for %s: %d records", name, len(summary.Records))
	return summary, nil
}
