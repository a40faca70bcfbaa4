package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

func writeWorkspace(t *testing.T, dir string, tomlBody string, code string) string {
	t.Helper()
	if code != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cpp"), []byte(code), 0644))
	}
	path := filepath.Join(dir, "dcode.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlBody), 0644))
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspace(t, dir, `
problem_id = 2
language = "cpp"
code_file = "main.cpp"

[[tests]]
in = "1 2"
ans = "3"

[[tests]]
in = "5 5"
`, "#include <iostream>\nint main() { return 0; }\n")

	spec, err := workspace.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, spec.ProblemID)
	assert.Equal(t, api.LangCpp, spec.Language)
	assert.Contains(t, spec.Code, "int main()")
	require.Len(t, spec.Tests, 2)
	assert.Equal(t, "1 2", spec.Tests[0].In)
	assert.Equal(t, "3", spec.Tests[0].Ans)
	assert.Equal(t, "", spec.Tests[1].Ans)
}

func TestParseFileRejectsUnsupportedLanguage(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspace(t, dir, `
problem_id = 2
language = "brainfuck"
code_file = "main.cpp"
`, "x")

	_, err := workspace.ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestParseFileRequiresProblemID(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspace(t, dir, `
language = "cpp"
code_file = "main.cpp"
`, "x")

	_, err := workspace.ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem_id")
}

func TestParseFileRejectsEmptyCode(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspace(t, dir, `
problem_id = 1
language = "python"
code_file = "main.cpp"
`, "   \n\n")

	_, err := workspace.ParseFile(path)
	require.Error(t, err)
}

func TestBuildAppendsCustomTestsAfterCanonical(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkspace(t, dir, `
problem_id = 3
language = "python"
code_file = "main.cpp"

[[tests]]
in = "custom in"
ans = "custom out"
`, "print(input())")

	spec, err := workspace.ParseFile(path)
	require.NoError(t, err)

	ws := spec.Build([]api.Testcase{
		{Input: "canon", ExpectedOutput: strPtr("out")},
	})
	snap := ws.Snapshot()
	require.Len(t, snap, 2)
	assert.False(t, snap[0].Custom)
	assert.True(t, snap[1].Custom)
	assert.Equal(t, "custom in", snap[1].Input)
	require.NotNil(t, snap[1].ExpectedOutput)
	assert.Equal(t, "custom out", *snap[1].ExpectedOutput)
}
