package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dcode-oj/dcode-cli/api"
)

// SpecTest is a custom testcase block in the workspace file
type SpecTest struct {
	In  string `toml:"in"`
	Ans string `toml:"ans"`
}

// specRoot maps the workspace TOML file:
//
//	problem_id = 2
//	language = "cpp"
//	code_file = "main.cpp"
//
//	[[tests]]
//	in = "1 2"
//	ans = "3"
type specRoot struct {
	ProblemID int        `toml:"problem_id"`
	Language  string     `toml:"language"`
	CodeFile  string     `toml:"code_file"`
	Tests     []SpecTest `toml:"tests"`
}

// FileSpec is a parsed workspace file with the code already read in.
type FileSpec struct {
	ProblemID int
	Language  api.Language
	Code      string
	Tests     []SpecTest
}

// ParseFile reads a workspace TOML file and loads the referenced code file.
// The code path is resolved relative to the workspace file.
func ParseFile(path string) (*FileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if root.ProblemID <= 0 {
		return nil, fmt.Errorf("workspace file is missing problem_id")
	}
	lang := api.Language(root.Language)
	if !api.SupportedLanguages.Contains(lang) {
		return nil, fmt.Errorf("unsupported language: %q (want cpp, java or python)", root.Language)
	}
	if root.CodeFile == "" {
		return nil, fmt.Errorf("workspace file is missing code_file")
	}

	codePath := root.CodeFile
	if !filepath.IsAbs(codePath) {
		codePath = filepath.Join(filepath.Dir(path), codePath)
	}
	code, err := os.ReadFile(codePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read code file: %w", err)
	}
	if strings.TrimSpace(string(code)) == "" {
		return nil, fmt.Errorf("code file %s is empty", root.CodeFile)
	}

	return &FileSpec{
		ProblemID: root.ProblemID,
		Language:  lang,
		Code:      string(code),
		Tests:     root.Tests,
	}, nil
}

// Build creates a workspace from the parsed spec and the canonical
// testcases fetched from the platform. Custom tests from the file are
// appended after the canonical set, same as adding them in the editor.
func (fs *FileSpec) Build(canonical []api.Testcase) *Workspace {
	ws := New(fs.ProblemID, fs.Language, fs.Code)
	ws.LoadCanonical(canonical)
	for _, t := range fs.Tests {
		var ans *string
		if t.Ans != "" {
			a := t.Ans
			ans = &a
		}
		ws.AppendCustom(t.In, ans)
	}
	return ws
}
