package api

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// RunStatus is the execution service's classification of one run. The
// service may return strings outside this list; those are carried verbatim
// and rendered with ToneNone.
type RunStatus string

const (
	StatusSuccess           RunStatus = "SUCCESS"
	StatusCompilationError  RunStatus = "COMPILATION_ERROR"
	StatusRuntimeError      RunStatus = "RUNTIME_ERROR"
	StatusTimeLimitExceeded RunStatus = "TIME_LIMIT_EXCEEDED"
	StatusServerError       RunStatus = "SERVER_ERROR"
)

// KnownStatuses is the set of classifications this client enumerates.
var KnownStatuses = mapset.NewSet(
	StatusSuccess,
	StatusCompilationError,
	StatusRuntimeError,
	StatusTimeLimitExceeded,
	StatusServerError,
)

// Known reports whether the status is one this client enumerates.
func (s RunStatus) Known() bool { return KnownStatuses.Contains(s) }

// Verdict is the grader's judgement of a whole submission.
type Verdict string

const (
	VerdictAccepted    Verdict = "Accepted"
	VerdictWrongAnswer Verdict = "Wrong Answer"
	VerdictPending     Verdict = "Pending"
	VerdictRunning     Verdict = "Running"
)

// Tone is the display classification of a status or verdict.
type Tone int

const (
	ToneNone Tone = iota
	TonePositive
	ToneNegative
	TonePending
)

// DisplayTone maps a verdict to its display tone: Accepted is positive,
// Pending and Running are in progress, everything else is negative.
func (v Verdict) DisplayTone() Tone {
	switch v {
	case VerdictAccepted:
		return TonePositive
	case VerdictPending, VerdictRunning:
		return TonePending
	default:
		return ToneNegative
	}
}

// DisplayTone maps a run status to a display tone. Unknown classifications
// fall through to ToneNone so new server statuses degrade gracefully.
func (s RunStatus) DisplayTone() Tone {
	switch s {
	case StatusSuccess:
		return TonePositive
	case StatusCompilationError, StatusServerError:
		return ToneNegative
	case StatusRuntimeError, StatusTimeLimitExceeded:
		return TonePending
	default:
		return ToneNone
	}
}

// DifficultyTone maps a problem difficulty label to a display tone. The
// comparison is case-insensitive like in the problem list view.
func DifficultyTone(difficulty string) Tone {
	switch strings.ToLower(difficulty) {
	case "easy":
		return TonePositive
	case "medium":
		return TonePending
	case "hard":
		return ToneNegative
	default:
		return ToneNone
	}
}
