package api

import "time"

// MsgType is a message type for streamed run-sweep progress
type MsgType string

// Streaming message type constants
const (
	StartSweepMsg  MsgType = "sweep_start"
	ReachTestMsg   MsgType = "test_reach"
	FinishTestMsg  MsgType = "test_finish"
	FinishSweepMsg MsgType = "sweep_finish"
)

// Testcase input/output size constraints for streaming
const (
	MaxStreamHeight = 40
	MaxStreamWidth  = 80
)

// Header is the common header for all streaming progress messages
type Header struct {
	SweepUuid string  `json:"sweep_uuid"`
	MsgType   MsgType `json:"msg_type"`
}

// StartSweep message sent when a run sweep begins
type StartSweep struct {
	Header
	ProblemID   int    `json:"problem_id"`
	NumTests    int    `json:"num_tests"`
	StartedTime string `json:"started_time"`
}

// ReachTest message sent right before a testcase is dispatched
type ReachTest struct {
	Header
	TestIndex int     `json:"test_index"`
	Input     *string `json:"input"`
}

// FinishTest message sent when one testcase's result is in
type FinishTest struct {
	Header
	TestIndex int       `json:"test_index"`
	Status    RunStatus `json:"status"`
	Output    *string   `json:"output"`
	Correct   *bool     `json:"correct"`
}

// FinishSweep message sent when the whole sweep completes
type FinishSweep struct {
	Header
	ErrorMessage *string `json:"error_message"`
}

// NewHeader creates the common message header
func NewHeader(sweepUuid string, msgType MsgType) Header {
	return Header{
		SweepUuid: sweepUuid,
		MsgType:   msgType,
	}
}

func NewStartSweep(sweepUuid string, problemID int, numTests int) StartSweep {
	return StartSweep{
		Header:      NewHeader(sweepUuid, StartSweepMsg),
		ProblemID:   problemID,
		NumTests:    numTests,
		StartedTime: time.Now().Format(time.RFC3339),
	}
}

func NewReachTest(sweepUuid string, testIndex int, input *string) ReachTest {
	return ReachTest{
		Header:    NewHeader(sweepUuid, ReachTestMsg),
		TestIndex: testIndex,
		Input:     input,
	}
}

func NewFinishTest(sweepUuid string, testIndex int, status RunStatus, output *string, correct *bool) FinishTest {
	return FinishTest{
		Header:    NewHeader(sweepUuid, FinishTestMsg),
		TestIndex: testIndex,
		Status:    status,
		Output:    output,
		Correct:   correct,
	}
}

func NewFinishSweep(sweepUuid string, errorMessage *string) FinishSweep {
	return FinishSweep{
		Header:       NewHeader(sweepUuid, FinishSweepMsg),
		ErrorMessage: errorMessage,
	}
}
