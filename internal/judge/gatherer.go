package judge

import (
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

// Gatherer receives run-sweep progress as it happens. The sweep result list
// is still published atomically on the workspace at the end; gatherers only
// exist for live feedback surfaces (terminal, NATS mirror).
type Gatherer interface {
	StartSweep(sweepUuid string, problemID int, numTests int)

	ReachTest(index int, input string)
	FinishTest(index int, res workspace.Result)

	FinishSweep(errIfAny error)
}

// DiscardGatherer ignores all progress. Used when no feedback surface is
// attached.
type DiscardGatherer struct{}

func (DiscardGatherer) StartSweep(sweepUuid string, problemID int, numTests int) {}
func (DiscardGatherer) ReachTest(index int, input string)                        {}
func (DiscardGatherer) FinishTest(index int, res workspace.Result)               {}
func (DiscardGatherer) FinishSweep(errIfAny error)                               {}

// MultiGatherer fans progress out to several gatherers in order.
type MultiGatherer []Gatherer

func (m MultiGatherer) StartSweep(sweepUuid string, problemID int, numTests int) {
	for _, g := range m {
		g.StartSweep(sweepUuid, problemID, numTests)
	}
}

func (m MultiGatherer) ReachTest(index int, input string) {
	for _, g := range m {
		g.ReachTest(index, input)
	}
}

func (m MultiGatherer) FinishTest(index int, res workspace.Result) {
	for _, g := range m {
		g.FinishTest(index, res)
	}
}

func (m MultiGatherer) FinishSweep(errIfAny error) {
	for _, g := range m {
		g.FinishSweep(errIfAny)
	}
}
