package api

// User is the identity returned by the auth verification endpoint.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Role of a platform account. The backend sends plain strings; anything
// outside the known constants is treated as a regular user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsAdmin reports whether the role grants access to the admin screens.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Problem as served by GET /problems/{id}. The list endpoint returns the
// same shape with only the summary fields populated.
type Problem struct {
	ID           string `json:"_id"`
	ProblemID    int    `json:"problem_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
	Difficulty   string `json:"difficulty"`
}

// Testcase as served by GET /testcases/{problem_id}. Canonical testcases
// always carry an expected output; the field is a pointer because custom
// testcases reuse this shape without one.
type Testcase struct {
	Input          string  `json:"input"`
	ExpectedOutput *string `json:"expected_output"`
}

// Submission is one row of GET /submissions/{problem_id}/{user_id}.
type Submission struct {
	ID          string  `json:"_id"`
	Language    string  `json:"language"`
	SubmittedAt string  `json:"submitted_at"`
	Verdict     Verdict `json:"verdict"`
	Code        string  `json:"code"`
	Message     string  `json:"message"`
}
