package judge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/platform"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

// ErrSubmitInFlight is returned when a submit is requested while another
// one is still pending for the same workspace.
var ErrSubmitInFlight = errors.New("a submit is already in flight")

// SubmitService sends a solution for verdicted grading. Implemented by
// platform.Client.
type SubmitService interface {
	Submit(ctx context.Context, req api.SubmitReq) (*api.SubmitResp, error)
}

// HistoryRefresher refetches the submission history after a submit. The
// refresh is best-effort: a failed refetch is logged, never surfaced.
type HistoryRefresher interface {
	Refresh(ctx context.Context, problemID int, userID string) ([]api.Submission, error)
}

// SubmitOutcome is the user-visible interpretation of one submit attempt.
type SubmitOutcome struct {
	// Accepted is true only for a successful submit with an Accepted verdict.
	Accepted bool
	// Warning marks the success=false and transport-failure branches.
	Warning bool
	Verdict api.Verdict
	// Message is the full user-visible text for this outcome.
	Message string
}

// Submitter drives exactly one submit request and interprets the verdict.
type Submitter struct {
	svc     SubmitService
	history HistoryRefresher
	log     *slog.Logger
}

func NewSubmitter(svc SubmitService, history HistoryRefresher, log *slog.Logger) *Submitter {
	if log == nil {
		log = slog.Default()
	}
	return &Submitter{svc: svc, history: history, log: log}
}

// Submit sends the workspace's code for grading. Whatever branch the
// response takes, the submission history is refreshed once and the submit
// flag returns to idle.
func (s *Submitter) Submit(ctx context.Context, ws *workspace.Workspace, user *api.User) (SubmitOutcome, error) {
	if user == nil {
		return SubmitOutcome{}, ErrNotLoggedIn
	}
	if !ws.TryBeginSubmit() {
		return SubmitOutcome{}, ErrSubmitInFlight
	}
	defer ws.EndSubmit()

	resp, err := s.svc.Submit(ctx, api.SubmitReq{
		Code:      ws.Code,
		Language:  ws.Language,
		ProblemID: ws.ProblemID,
		UserID:    user.UserID,
		Username:  user.Username,
	})

	// The history refetch happens on every branch, including transport
	// failures: the backend may have recorded the submission anyway.
	defer s.refreshHistory(ctx, ws.ProblemID, user.UserID)

	if err != nil {
		s.log.Warn("submit request failed", "error", err)
		return SubmitOutcome{
			Warning: true,
			Message: platform.UserMessage(err, "Error submitting solution"),
		}, nil
	}

	return interpretVerdict(resp), nil
}

func (s *Submitter) refreshHistory(ctx context.Context, problemID int, userID string) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Refresh(ctx, problemID, userID); err != nil {
		s.log.Warn("failed to refresh submission history", "error", err)
	}
}

// interpretVerdict maps a submit response to its user-visible outcome.
func interpretVerdict(resp *api.SubmitResp) SubmitOutcome {
	if !resp.Success {
		return SubmitOutcome{
			Warning: true,
			Message: resp.Message,
		}
	}

	if resp.Verdict == api.VerdictAccepted {
		return SubmitOutcome{
			Accepted: true,
			Verdict:  resp.Verdict,
			Message:  "Correct Answer!",
		}
	}

	verdict := resp.Verdict
	if verdict == "" {
		verdict = api.VerdictWrongAnswer
	}
	return SubmitOutcome{
		Verdict: verdict,
		Message: fmt.Sprintf("%s. %s", verdict, resp.Message),
	}
}
