package judge_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/judge"
	"github.com/dcode-oj/dcode-cli/internal/platform"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

type fakeReviewSvc struct {
	fn    func(req api.ReviewReq) (*api.ReviewResp, error)
	calls atomic.Int64
}

func (f *fakeReviewSvc) Review(ctx context.Context, req api.ReviewReq) (*api.ReviewResp, error) {
	f.calls.Add(1)
	return f.fn(req)
}

func TestReviewReturnsText(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return &api.ReviewResp{Review: "looks fine, mind the overflow"}, nil
	}}
	ws := newWorkspace()

	review, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, testUser())
	require.NoError(t, err)
	assert.Equal(t, "looks fine, mind the overflow", review)
}

func TestReviewRefusesBlankCode(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return &api.ReviewResp{}, nil
	}}
	ws := workspace.New(1, api.LangPython, "   \n\t  ")

	_, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, testUser())
	require.ErrorIs(t, err, judge.ErrEmptyCode)
	assert.EqualValues(t, 0, svc.calls.Load(), "no request for whitespace-only code")
}

func TestReviewRefusedWithoutUser(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return &api.ReviewResp{}, nil
	}}
	ws := newWorkspace()

	_, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, nil)
	require.ErrorIs(t, err, judge.ErrNotLoggedIn)
	assert.EqualValues(t, 0, svc.calls.Load())
}

func TestReviewEmptyResponseFallback(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return &api.ReviewResp{}, nil
	}}
	ws := newWorkspace()

	review, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, testUser())
	require.NoError(t, err)
	assert.Equal(t, "Received empty response from AI service", review)
}

func TestReviewFailurePrefixed(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return nil, errors.New("model overloaded")
	}}
	ws := newWorkspace()

	review, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, testUser())
	require.NoError(t, err, "failures surface inline, not as errors")
	assert.Contains(t, review, "⚠")
	assert.Contains(t, review, "model overloaded")
}

func TestReviewFailurePrefersMessageField(t *testing.T) {
	svc := &fakeReviewSvc{fn: func(req api.ReviewReq) (*api.ReviewResp, error) {
		return nil, &platform.APIError{
			StatusCode: 502,
			Envelope:   api.ErrorResp{Error: "bad gateway", Message: "AI service timed out"},
		}
	}}
	ws := newWorkspace()

	review, err := judge.NewReviewer(svc, nil).Review(context.Background(), ws, testUser())
	require.NoError(t, err)
	assert.Contains(t, review, "AI service timed out")
	assert.NotContains(t, review, "bad gateway")
}
