package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dcode-oj/dcode-cli/api"
)

// sessionCookieName is the cookie the backend sets on login. The jar may
// hold others alongside it.
const sessionCookieName = "token"

// Client talks to the Dcode backend. Every request carries the session
// cookie, mirroring the browser's withCredentials behaviour.
type Client struct {
	base *url.URL
	http *http.Client
	log  *slog.Logger
}

// New creates a client for the given backend origin, e.g.
// "http://localhost:5000/api".
func New(base string, log *slog.Logger) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse api base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		base: u,
		http: &http.Client{Jar: jar},
		log:  log,
	}, nil
}

// SetSessionCookie seeds the jar with a previously persisted session cookie.
func (c *Client) SetSessionCookie(cookie *http.Cookie) {
	if cookie == nil {
		return
	}
	c.http.Jar.SetCookies(c.base, []*http.Cookie{cookie})
}

// SessionCookie returns the current session cookie, if any. Used to persist
// the session after login.
func (c *Client) SessionCookie() *http.Cookie {
	cookies := c.http.Jar.Cookies(c.base)
	for _, cookie := range cookies {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	// A backend that renamed its session cookie still gets persisted, as
	// long as it sets exactly one.
	if len(cookies) == 1 {
		return cookies[0]
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.base.JoinPath(path).String()
}

// doJSON issues one request and decodes the response into out. Non-2xx
// responses are converted into an *APIError carrying the backend's error
// envelope.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.log.Debug("backend request", "method", method, "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// VerifyAuth checks the session cookie against the backend. A valid session
// yields the user; an anonymous session yields a nil user with no error.
func (c *Client) VerifyAuth(ctx context.Context) (*api.User, error) {
	var resp api.AuthResp
	if err := c.doJSON(ctx, http.MethodGet, "auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login establishes a session. The session cookie lands in the jar as a
// side effect of the response.
func (c *Client) Login(ctx context.Context, req api.LoginReq) (*api.User, error) {
	var resp api.AuthResp
	if err := c.doJSON(ctx, http.MethodPost, "auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("login succeeded but no user was returned")
	}
	return resp.User, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "auth/logout", nil, nil)
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req api.RegisterReq) (*api.User, error) {
	var resp api.AuthResp
	if err := c.doJSON(ctx, http.MethodPost, "auth/register", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// ListProblems fetches the problem list.
func (c *Client) ListProblems(ctx context.Context) ([]api.Problem, error) {
	var problems []api.Problem
	if err := c.doJSON(ctx, http.MethodGet, "problems", nil, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}

// Problem fetches one problem by its numeric id.
func (c *Client) Problem(ctx context.Context, problemID int) (*api.Problem, error) {
	var p api.Problem
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("problems/%d", problemID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Testcases fetches the canonical testcases of a problem.
func (c *Client) Testcases(ctx context.Context, problemID int) ([]api.Testcase, error) {
	var tcs []api.Testcase
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("testcases/%d", problemID), nil, &tcs); err != nil {
		return nil, err
	}
	return tcs, nil
}

// ProblemWithTestcases fetches a problem and its testcases concurrently,
// the way the problem view loads both at once.
func (c *Client) ProblemWithTestcases(ctx context.Context, problemID int) (*api.Problem, []api.Testcase, error) {
	var (
		problem *api.Problem
		tcs     []api.Testcase
	)
	errs, ctx := errgroup.WithContext(ctx)
	errs.Go(func() error {
		var err error
		problem, err = c.Problem(ctx, problemID)
		return err
	})
	errs.Go(func() error {
		var err error
		tcs, err = c.Testcases(ctx, problemID)
		return err
	})
	if err := errs.Wait(); err != nil {
		return nil, nil, err
	}
	return problem, tcs, nil
}

// Submissions fetches the past submissions for one (problem, user) pair.
func (c *Client) Submissions(ctx context.Context, problemID int, userID string) ([]api.Submission, error) {
	var subs []api.Submission
	path := fmt.Sprintf("submissions/%d/%s", problemID, url.PathEscape(userID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// Run executes code against one input on the remote execution service.
func (c *Client) Run(ctx context.Context, req api.RunReq) (*api.RunResp, error) {
	var resp api.RunResp
	if err := c.doJSON(ctx, http.MethodPost, "run", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Submit sends the solution for verdicted grading.
func (c *Client) Submit(ctx context.Context, req api.SubmitReq) (*api.SubmitResp, error) {
	var resp api.SubmitResp
	if err := c.doJSON(ctx, http.MethodPost, "submit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Review requests an AI code review.
func (c *Client) Review(ctx context.Context, req api.ReviewReq) (*api.ReviewResp, error) {
	var resp api.ReviewResp
	if err := c.doJSON(ctx, http.MethodPost, "ai-review", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
