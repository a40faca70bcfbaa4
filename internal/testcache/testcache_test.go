package testcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/testcache"
)

func strPtr(s string) *string { return &s }

func TestPutGetRoundTrip(t *testing.T) {
	cache, err := testcache.New(t.TempDir())
	require.NoError(t, err)

	tcs := []api.Testcase{
		{Input: "1 2", ExpectedOutput: strPtr("3")},
		{Input: "large\nmultiline\ninput", ExpectedOutput: strPtr("ok\n")},
	}
	require.NoError(t, cache.Put(7, tcs))

	got, ok := cache.Get(7)
	require.True(t, ok)
	assert.Equal(t, tcs, got)
}

func TestGetMiss(t *testing.T) {
	cache, err := testcache.New(t.TempDir())
	require.NoError(t, err)

	_, ok := cache.Get(99)
	assert.False(t, ok)
}

func TestEntriesSurviveAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := testcache.New(dir)
	require.NoError(t, err)
	tcs := []api.Testcase{{Input: "in", ExpectedOutput: strPtr("out")}}
	require.NoError(t, first.Put(3, tcs))

	second, err := testcache.New(dir)
	require.NoError(t, err)
	got, ok := second.Get(3)
	require.True(t, ok, "entries are read back from disk")
	assert.Equal(t, tcs, got)
}

func TestDrop(t *testing.T) {
	dir := t.TempDir()
	cache, err := testcache.New(dir)
	require.NoError(t, err)

	require.NoError(t, cache.Put(1, []api.Testcase{{Input: "x"}}))
	require.NoError(t, cache.Drop(1))

	_, ok := cache.Get(1)
	assert.False(t, ok)

	require.NoError(t, cache.Drop(1), "dropping a missing entry is fine")
}
