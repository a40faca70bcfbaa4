package judge

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/platform"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

// ErrEmptyCode is returned when a review is requested for blank code. No
// request is made.
var ErrEmptyCode = errors.New("write some code first")

// ErrReviewInFlight is returned when a review is already pending.
var ErrReviewInFlight = errors.New("a review is already in flight")

// emptyReviewFallback is shown when the AI service answers successfully but
// with no content.
const emptyReviewFallback = "Received empty response from AI service"

// ReviewService requests an AI code review. Implemented by platform.Client.
type ReviewService interface {
	Review(ctx context.Context, req api.ReviewReq) (*api.ReviewResp, error)
}

// Reviewer drives one AI review request, independent of run and submit
// state.
type Reviewer struct {
	svc ReviewService
	log *slog.Logger
}

func NewReviewer(svc ReviewService, log *slog.Logger) *Reviewer {
	if log == nil {
		log = slog.Default()
	}
	return &Reviewer{svc: svc, log: log}
}

// Review requests an AI review of the workspace's code and returns the
// review text. Blank code and missing authentication are refused locally.
// Failures come back as review text too, prefixed for visual distinction,
// so the rest of the editor keeps working.
func (r *Reviewer) Review(ctx context.Context, ws *workspace.Workspace, user *api.User) (string, error) {
	if strings.TrimSpace(ws.Code) == "" {
		return "", ErrEmptyCode
	}
	if user == nil {
		return "", ErrNotLoggedIn
	}
	if !ws.TryBeginReview() {
		return "", ErrReviewInFlight
	}
	defer ws.EndReview()

	resp, err := r.svc.Review(ctx, api.ReviewReq{
		Code:     ws.Code,
		Language: ws.Language,
	})
	if err != nil {
		r.log.Warn("review request failed", "error", err)
		return "⚠ " + platform.DetailedUserMessage(err, "Error generating AI review"), nil
	}

	if resp.Review == "" {
		return emptyReviewFallback, nil
	}
	return resp.Review, nil
}
