package api

// RunResp is the execution service's answer to one POST /run request.
// Output is meaningful only when Status is StatusSuccess.
type RunResp struct {
	Status RunStatus `json:"status"`
	Output string    `json:"output"`
}

// SubmitResp is the verdicted answer to POST /submit.
type SubmitResp struct {
	Success bool    `json:"success"`
	Verdict Verdict `json:"verdict"`
	Message string  `json:"message"`
}

// ReviewResp is the answer to POST /ai-review.
type ReviewResp struct {
	Review string `json:"review"`
}

// AuthResp is the shape shared by /auth/verify, /auth/login and
// /auth/register. User is null when no session is established.
type AuthResp struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// ErrorResp is the backend's error envelope. Not every handler fills both
// fields, so consumers prefer Error, then Message, then a generic fallback.
type ErrorResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
