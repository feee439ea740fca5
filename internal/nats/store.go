package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "stepwise_events"
	subjectPrefix = "stepwise"
)

// StreamName returns the name of the journal stream.
func StreamName() string {
	return streamName
}

// SubjectForWizard returns the wildcard subject for every event of a wizard.
// Example: "stepwise.create-cluster.>"
func SubjectForWizard(wizard string) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, wizard)
}

// SubjectForEvent returns the subject for one event kind of a wizard.
// Example: "stepwise.create-cluster.commit"
func SubjectForEvent(wizard, kind string) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, wizard, kind)
}

// SetupStream creates or updates the JetStream stream for wizard events.
// The stream captures all wizards with 30-day retention.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   30 * 24 * time.Hour,
	})
}

// CreateConsumer creates an ordered, ack-explicit consumer that replays the
// events of one wizard from the beginning.
func CreateConsumer(ctx context.Context, stream jetstream.Stream, wizard string) (jetstream.Consumer, error) {
	return stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: SubjectForWizard(wizard),
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
}
