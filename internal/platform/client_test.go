package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/platform"
)

func newTestClient(t *testing.T, handler http.Handler) (*platform.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := platform.New(server.URL, nil)
	require.NoError(t, err)
	return client, server
}

func TestRunDecodesResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/run", r.URL.Path)

		var req api.RunReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, api.LangCpp, req.Language)
		assert.Equal(t, "3 4", req.Input)

		json.NewEncoder(w).Encode(api.RunResp{Status: api.StatusSuccess, Output: "7\n"})
	}))

	resp, err := client.Run(context.Background(), api.RunReq{
		Code:     "int main() {}",
		Language: api.LangCpp,
		Input:    "3 4",
	})
	require.NoError(t, err)
	assert.Equal(t, api.StatusSuccess, resp.Status)
	assert.Equal(t, "7\n", resp.Output)
}

func TestErrorEnvelopePreference(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field preferred", `{"error":"compile service down","message":"try later"}`, "compile service down"},
		{"message as fallback", `{"message":"try later"}`, "try later"},
		{"generic fallback", `{}`, "request failed"},
		{"non-json body", `internal server error`, "request failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tc.body))
			}))

			_, err := client.Submit(context.Background(), api.SubmitReq{})
			require.Error(t, err)
			assert.Equal(t, tc.want, platform.UserMessage(err, "fallback"))
		})
	}
}

func TestSessionCookieRoundTrip(t *testing.T) {
	var sawCookie string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc123", Path: "/"})
			json.NewEncoder(w).Encode(api.AuthResp{User: &api.User{UserID: "u1", Username: "alice", Role: api.RoleUser}})
		case "/auth/verify":
			if c, err := r.Cookie("token"); err == nil {
				sawCookie = c.Value
			}
			json.NewEncoder(w).Encode(api.AuthResp{User: &api.User{UserID: "u1"}})
		}
	}))

	user, err := client.Login(context.Background(), api.LoginReq{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	cookie := client.SessionCookie()
	require.NotNil(t, cookie, "login response cookie lands in the jar")
	assert.Equal(t, "token", cookie.Name)

	_, err = client.VerifyAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", sawCookie, "the session cookie is sent on later requests")
}

func TestSessionCookiePickedByName(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrf", Value: "nope", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc123", Path: "/"})
		json.NewEncoder(w).Encode(api.AuthResp{User: &api.User{UserID: "u1"}})
	}))

	_, err := client.Login(context.Background(), api.LoginReq{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	cookie := client.SessionCookie()
	require.NotNil(t, cookie)
	assert.Equal(t, "token", cookie.Name, "the session cookie wins over its siblings")
	assert.Equal(t, "abc123", cookie.Value)
}

func TestVerifyAuthAnonymous(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":null}`))
	}))

	user, err := client.VerifyAuth(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSubmissionsPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/submissions/42/u9", r.URL.Path)
		json.NewEncoder(w).Encode([]api.Submission{{ID: "s1", Verdict: api.VerdictAccepted}})
	}))

	subs, err := client.Submissions(context.Background(), 42, "u9")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, api.VerdictAccepted, subs[0].Verdict)
}

func TestProblemWithTestcasesFetchesBoth(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/problems/5":
			json.NewEncoder(w).Encode(api.Problem{ProblemID: 5, Title: "Two Sum"})
		case "/testcases/5":
			json.NewEncoder(w).Encode([]api.Testcase{{Input: "1 2"}, {Input: "3 4"}})
		default:
			http.NotFound(w, r)
		}
	}))

	problem, tcs, err := client.ProblemWithTestcases(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", problem.Title)
	assert.Len(t, tcs, 2)
}
