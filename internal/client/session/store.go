// Package session persists the authenticated identity between dashboard
// runs. The store keeps two durable keys, the user payload and the bearer
// token; a session only exists while both are present.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Session struct {
	User  User
	Token string
}

type Store interface {
	Save(user User, token string) error
	Restore() (*Session, error)
	Clear() error
	// Token returns the currently persisted bearer token, or "" when no
	// session exists. Read fresh on every call, never cached.
	Token() string
}

const (
	userFile  = "user.json"
	tokenFile = "token"
)

type fileStore struct {
	dir string
}

// NewFileStore keeps session state as two files under dir, created on the
// first Save.
func NewFileStore(dir string) Store {
	return &fileStore{dir: dir}
}

func (s *fileStore) Save(user User, token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600)
}

// Restore returns nil with no error when either key is absent. A user
// payload that no longer parses wipes the store instead of producing a
// half-usable session.
func (s *fileStore) Restore() (*Session, error) {
	userData, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	tokenData, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var user User
	if err := json.Unmarshal(userData, &user); err != nil {
		_ = s.Clear()
		return nil, nil
	}

	token := string(tokenData)
	if token == "" {
		return nil, nil
	}

	return &Session{User: user, Token: token}, nil
}

func (s *fileStore) Clear() error {
	var firstErr error
	for _, name := range []string{userFile, tokenFile} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *fileStore) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return string(data)
}
