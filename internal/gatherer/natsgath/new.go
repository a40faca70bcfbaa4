package natsgath

import (
	"github.com/nats-io/nats.go"
)

// New creates a NATS gatherer that mirrors run-sweep progress to the given
// subject. Editor integrations subscribe to it to show live results.
func New(nc *nats.Conn, subject string) *natsGatherer {
	return &natsGatherer{
		nc:      nc,
		subject: subject,
	}
}
