package judge

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

// ErrNotLoggedIn is returned when an operation requires an authenticated
// user. The caller sends the user to the login entry point; no network
// request is made.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrRunInFlight is returned when a sweep is requested while another one is
// still running for the same workspace.
var ErrRunInFlight = errors.New("a run is already in flight")

// ExecService executes code against one input. Implemented by
// platform.Client; tests substitute a mock.
type ExecService interface {
	Run(ctx context.Context, req api.RunReq) (*api.RunResp, error)
}

// Runner drives one run sweep: the current code against every testcase,
// one request at a time.
type Runner struct {
	exec ExecService
	log  *slog.Logger
}

func NewRunner(exec ExecService, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{exec: exec, log: log}
}

// RunAll executes the workspace's code against every testcase in order and
// publishes the full result list on the workspace.
//
// The sweep is strictly sequential: request i+1 is not issued until request
// i has resolved. This bounds load on the execution service and keeps
// result[i] aligned with testcase[i]. The testcase set is snapshotted at
// sweep start, so edits made while the sweep is in flight affect only the
// next run.
//
// A request-level failure is recorded as a SERVER_ERROR result for that
// index alone; the remaining testcases are still attempted. Cancelling the
// context aborts the sweep between requests without publishing anything.
func (r *Runner) RunAll(ctx context.Context, ws *workspace.Workspace, user *api.User, gath Gatherer) ([]workspace.Result, error) {
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	if !ws.TryBeginRun() {
		return nil, ErrRunInFlight
	}
	defer ws.EndRun()

	if gath == nil {
		gath = DiscardGatherer{}
	}

	sweepUuid := uuid.NewString()
	snapshot := ws.Snapshot()
	gath.StartSweep(sweepUuid, ws.ProblemID, len(snapshot))

	results := make([]workspace.Result, 0, len(snapshot))
	for i, tc := range snapshot {
		if err := ctx.Err(); err != nil {
			gath.FinishSweep(err)
			return nil, err
		}

		gath.ReachTest(i, tc.Input)

		resp, err := r.exec.Run(ctx, api.RunReq{
			Code:     ws.Code,
			Language: ws.Language,
			Input:    tc.Input,
		})

		var res workspace.Result
		if err != nil {
			r.log.Warn("run request failed", "test", i, "error", err)
			res = workspace.Result{Status: api.StatusServerError}
		} else {
			res = deriveResult(tc, resp)
		}

		results = append(results, res)
		gath.FinishTest(i, res)
	}

	ws.SetResults(results)
	gath.FinishSweep(nil)
	return results, nil
}

// deriveResult classifies one execution response against its testcase.
// Correctness is a trimmed exact comparison, computed only for canonical
// testcases whose run succeeded.
func deriveResult(tc workspace.Testcase, resp *api.RunResp) workspace.Result {
	res := workspace.Result{Status: resp.Status}
	if resp.Status != api.StatusSuccess {
		return res
	}

	res.Output = strings.TrimSpace(resp.Output)
	if tc.Custom || tc.ExpectedOutput == nil {
		return res
	}

	correct := strings.TrimSpace(*tc.ExpectedOutput) == strings.TrimSpace(resp.Output)
	res.Correct = &correct
	return res
}
