package workspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

func strPtr(s string) *string { return &s }

func TestLoadCanonicalReplacesSet(t *testing.T) {
	ws := workspace.New(7, api.LangCpp, "code")
	ws.LoadCanonical([]api.Testcase{
		{Input: "1", ExpectedOutput: strPtr("one")},
		{Input: "2", ExpectedOutput: strPtr("two")},
	})
	ws.Append()
	require.Equal(t, 3, ws.Len())

	ws.LoadCanonical([]api.Testcase{{Input: "x"}})
	assert.Equal(t, 1, ws.Len(), "reload discards custom testcases too")

	snap := ws.Snapshot()
	assert.False(t, snap[0].Custom)
	assert.Equal(t, "x", snap[0].Input)
}

func TestAppendAndUpdate(t *testing.T) {
	ws := workspace.New(7, api.LangJava, "code")
	ws.LoadCanonical([]api.Testcase{{Input: "a", ExpectedOutput: strPtr("A")}})

	idx := ws.Append()
	assert.Equal(t, 1, idx)

	ws.UpdateInput(idx, "hello")
	ws.UpdateExpected(idx, "world")

	snap := ws.Snapshot()
	require.Len(t, snap, 2)
	assert.True(t, snap[idx].Custom)
	assert.Equal(t, "hello", snap[idx].Input)
	require.NotNil(t, snap[idx].ExpectedOutput)
	assert.Equal(t, "world", *snap[idx].ExpectedOutput)
}

func TestSnapshotIsDetached(t *testing.T) {
	ws := workspace.New(7, api.LangPython, "code")
	ws.LoadCanonical([]api.Testcase{{Input: "a"}})

	snap := ws.Snapshot()
	ws.UpdateInput(0, "changed")
	ws.Append()

	assert.Equal(t, "a", snap[0].Input, "later edits don't leak into the snapshot")
	assert.Len(t, snap, 1)
}

func TestResultsPublishedAtomically(t *testing.T) {
	ws := workspace.New(7, api.LangCpp, "code")
	assert.Empty(t, ws.Results())

	ws.SetResults([]workspace.Result{
		{Status: api.StatusSuccess, Output: "1"},
		{Status: api.StatusServerError},
	})
	got := ws.Results()
	require.Len(t, got, 2)

	ws.SetResults([]workspace.Result{{Status: api.StatusSuccess}})
	assert.Len(t, ws.Results(), 1, "a new sweep replaces, never merges")
}

func TestFlagsAreIndependent(t *testing.T) {
	ws := workspace.New(7, api.LangCpp, "code")

	require.True(t, ws.TryBeginRun())
	assert.False(t, ws.TryBeginRun())
	assert.True(t, ws.TryBeginSubmit(), "submit is not gated by a running sweep")
	assert.True(t, ws.TryBeginReview())

	ws.EndRun()
	ws.EndSubmit()
	ws.EndReview()
	assert.False(t, ws.Running())
	assert.False(t, ws.Submitting())
	assert.True(t, ws.TryBeginRun())
}
