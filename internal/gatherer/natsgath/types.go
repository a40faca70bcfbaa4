package natsgath

import (
	"github.com/nats-io/nats.go"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

type natsGatherer struct {
	nc        *nats.Conn
	subject   string
	sweepUuid string
}

func (s *natsGatherer) StartSweep(sweepUuid string, problemID int, numTests int) {
	s.sweepUuid = sweepUuid
	s.send(api.NewStartSweep(sweepUuid, problemID, numTests))
}

func (s *natsGatherer) ReachTest(index int, input string) {
	var inputPtr *string
	if trimmed := trimStrToRect(input, api.MaxStreamHeight, api.MaxStreamWidth); trimmed != "" {
		inputPtr = &trimmed
	}
	s.send(api.NewReachTest(s.sweepUuid, index, inputPtr))
}

func (s *natsGatherer) FinishTest(index int, res workspace.Result) {
	var outputPtr *string
	if res.Status == api.StatusSuccess {
		trimmed := trimStrToRect(res.Output, api.MaxStreamHeight, api.MaxStreamWidth)
		outputPtr = &trimmed
	}
	s.send(api.NewFinishTest(s.sweepUuid, index, res.Status, outputPtr, res.Correct))
}

func (s *natsGatherer) FinishSweep(errIfAny error) {
	var errMsg *string
	if errIfAny != nil {
		m := errIfAny.Error()
		errMsg = &m
	}
	s.send(api.NewFinishSweep(s.sweepUuid, errMsg))
}
