package session

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/xdg"
)

const sessionFname = "session.toml"

// Session is the persisted equivalent of the browser's auth cookie plus the
// verified identity the SPA keeps in memory. It survives across command
// invocations in the XDG state directory.
type Session struct {
	UserID   string `toml:"user_id"`
	Username string `toml:"username"`
	Role     string `toml:"role"`

	CookieName  string `toml:"cookie_name"`
	CookieValue string `toml:"cookie_value"`
}

// User converts the stored identity back into the wire shape.
func (s *Session) User() *api.User {
	if s == nil || s.UserID == "" {
		return nil
	}
	return &api.User{
		UserID:   s.UserID,
		Username: s.Username,
		Role:     api.Role(s.Role),
	}
}

// Cookie returns the stored session cookie, or nil when none was saved.
func (s *Session) Cookie() *http.Cookie {
	if s == nil || s.CookieName == "" {
		return nil
	}
	return &http.Cookie{Name: s.CookieName, Value: s.CookieValue}
}

// Store reads and writes sessions under one state directory.
type Store struct {
	dirs *xdg.Dirs
}

func NewStore(dirs *xdg.Dirs) *Store {
	return &Store{dirs: dirs}
}

func (st *Store) path() string {
	return filepath.Join(st.dirs.StateDir(), sessionFname)
}

// Load returns the saved session, or nil when the user never logged in.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

// Save persists the session for later invocations.
func (st *Store) Save(user *api.User, cookie *http.Cookie) error {
	s := Session{}
	if user != nil {
		s.UserID = user.UserID
		s.Username = user.Username
		s.Role = string(user.Role)
	}
	if cookie != nil {
		s.CookieName = cookie.Name
		s.CookieValue = cookie.Value
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := st.dirs.EnsureDir(st.dirs.StateDir()); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	if err := os.WriteFile(st.path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear forgets the session. Used on logout; a missing file is fine.
func (st *Store) Clear() error {
	err := os.Remove(st.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
