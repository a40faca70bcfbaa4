package api

import mapset "github.com/deckarep/golang-set/v2"

// Language is one of the languages the execution service accepts.
type Language string

const (
	LangCpp    Language = "cpp"
	LangJava   Language = "java"
	LangPython Language = "python"
)

// SupportedLanguages is the closed set of languages the platform runs.
var SupportedLanguages = mapset.NewSet(LangCpp, LangJava, LangPython)

// RunReq is the body of POST /run: one execution of code against one input.
type RunReq struct {
	Code     string   `json:"code"`
	Language Language `json:"language"`
	Input    string   `json:"input"`
}

// SubmitReq is the body of POST /submit. ProblemID is numeric on the wire
// even though the problem route parameter is a string.
type SubmitReq struct {
	Code      string   `json:"code"`
	Language  Language `json:"language"`
	ProblemID int      `json:"problem_id"`
	UserID    string   `json:"user_id"`
	Username  string   `json:"username"`
}

// ReviewReq is the body of POST /ai-review.
type ReviewReq struct {
	Code     string   `json:"code"`
	Language Language `json:"language"`
}

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterReq is the body of POST /auth/register.
type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
