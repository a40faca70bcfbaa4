package termgath

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

// TerminalGatherer prints run-sweep progress to stdout as it happens.
type TerminalGatherer struct {
	StartedAt time.Time
	numTests  int
}

func New() *TerminalGatherer { return &TerminalGatherer{StartedAt: time.Now()} }

func (t *TerminalGatherer) StartSweep(sweepUuid string, problemID int, numTests int) {
	t.numTests = numTests
	fmt.Printf("== Running %d testcase(s) for problem %d ==\n", numTests, problemID)
}

func (t *TerminalGatherer) ReachTest(index int, input string) {
	fmt.Printf("-> Testcase %d/%d\n", index+1, t.numTests)
}

func (t *TerminalGatherer) FinishTest(index int, res workspace.Result) {
	if res.Status == api.StatusSuccess {
		fmt.Printf("   output: %s\n", res.Output)
	} else {
		fmt.Printf("   %s\n", toneColor(res.Status.DisplayTone()).Sprint(res.Status))
	}
	if res.Correct != nil {
		if *res.Correct {
			fmt.Printf("   %s\n", color.GreenString("✔ Correct answer"))
		} else {
			fmt.Printf("   %s\n", color.RedString("✖ Wrong answer"))
		}
	}
}

func (t *TerminalGatherer) FinishSweep(errIfAny error) {
	if errIfAny != nil {
		fmt.Printf("== Run aborted: %v ==\n", errIfAny)
		return
	}
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	fmt.Printf("== Run finished in %s ==\n", dur)
}

func toneColor(tone api.Tone) *color.Color {
	switch tone {
	case api.TonePositive:
		return color.New(color.FgGreen)
	case api.ToneNegative:
		return color.New(color.FgRed)
	case api.TonePending:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
