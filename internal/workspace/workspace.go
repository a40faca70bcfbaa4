package workspace

import (
	"sync"
	"sync/atomic"

	"github.com/dcode-oj/dcode-cli/api"
)

// Testcase is one entry of the problem view's testcase set. Canonical
// testcases come from the backend and carry an expected output; custom
// testcases are created locally and never persisted to the platform.
type Testcase struct {
	Input          string
	ExpectedOutput *string
	Custom         bool
}

// Result is the outcome of running the code against one testcase. Output is
// set only for successful runs; for anything else the status string itself
// is the user-visible message. Correct stays nil when there is no ground
// truth (custom testcase) or no output to compare (non-success status).
type Result struct {
	Status  api.RunStatus
	Output  string
	Correct *bool
}

// Workspace is the explicit state object of one problem view: the current
// code and language, the testcase set, the latest execution results, and the
// in-flight flags for run, submit and review. Coordinators receive it by
// reference instead of capturing ambient state.
type Workspace struct {
	ProblemID int
	Language  api.Language
	Code      string

	mu        sync.Mutex
	testcases []Testcase
	results   []Result

	running    atomic.Bool
	submitting atomic.Bool
	reviewing  atomic.Bool
}

func New(problemID int, language api.Language, code string) *Workspace {
	return &Workspace{
		ProblemID: problemID,
		Language:  language,
		Code:      code,
	}
}

// LoadCanonical replaces the testcase set with server-provided testcases.
// Called once per problem load; any custom testcases are discarded.
func (w *Workspace) LoadCanonical(canonical []api.Testcase) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.testcases = make([]Testcase, 0, len(canonical))
	for _, tc := range canonical {
		w.testcases = append(w.testcases, Testcase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
	}
}

// Append adds a blank custom testcase and returns its index. Custom
// testcases are validated only at run time.
func (w *Workspace) Append() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.testcases = append(w.testcases, Testcase{Custom: true})
	return len(w.testcases) - 1
}

// AppendCustom adds a filled-in custom testcase, as loaded from a
// workspace file.
func (w *Workspace) AppendCustom(input string, expected *string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.testcases = append(w.testcases, Testcase{
		Input:          input,
		ExpectedOutput: expected,
		Custom:         true,
	})
	return len(w.testcases) - 1
}

// UpdateInput mutates the input of the testcase at index. The index must
// reference a currently existing entry.
func (w *Workspace) UpdateInput(index int, input string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.testcases[index].Input = input
}

// UpdateExpected mutates the expected output of the testcase at index.
func (w *Workspace) UpdateExpected(index int, expected string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.testcases[index].ExpectedOutput = &expected
}

// Snapshot returns a copy of the testcase set as it exists right now. A run
// sweep operates on a snapshot so edits made while it is in flight cannot
// skew result-to-index correspondence.
func (w *Workspace) Snapshot() []Testcase {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Testcase, len(w.testcases))
	copy(out, w.testcases)
	return out
}

// Len returns the number of testcases currently in the set.
func (w *Workspace) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.testcases)
}

// SetResults publishes a full result list, replacing the previous one.
// Readers never observe a partially updated list.
func (w *Workspace) SetResults(results []Result) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.results = results
}

// Results returns a copy of the last published result list.
func (w *Workspace) Results() []Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Result, len(w.results))
	copy(out, w.results)
	return out
}

// TryBeginRun flips the run flag from idle to running. It returns false
// when a sweep is already in flight.
func (w *Workspace) TryBeginRun() bool { return w.running.CompareAndSwap(false, true) }

// EndRun returns the run flag to idle.
func (w *Workspace) EndRun() { w.running.Store(false) }

// Running reports whether a sweep is in flight.
func (w *Workspace) Running() bool { return w.running.Load() }

// TryBeginSubmit flips the submit flag from idle to submitting.
func (w *Workspace) TryBeginSubmit() bool { return w.submitting.CompareAndSwap(false, true) }

// EndSubmit returns the submit flag to idle.
func (w *Workspace) EndSubmit() { w.submitting.Store(false) }

// Submitting reports whether a submit is in flight.
func (w *Workspace) Submitting() bool { return w.submitting.Load() }

// TryBeginReview flips the review flag from idle to reviewing.
func (w *Workspace) TryBeginReview() bool { return w.reviewing.CompareAndSwap(false, true) }

// EndReview returns the review flag to idle.
func (w *Workspace) EndReview() { w.reviewing.Store(false) }
