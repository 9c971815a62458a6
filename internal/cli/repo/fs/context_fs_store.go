package fs

import (
	"Reminder/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoUser текущий пользователь не выбран.
var ErrNoUser = errors.New("no current user, run: rmcli use <userId>")

const currentUserFile = "current_user"

// ContextFSStore файловое хранилище текущего пользователя CLI.
type ContextFSStore struct {
	Dir string
}

var _ repo.UserContextStore = ContextFSStore{}

func (s ContextFSStore) path() (string, error) {
	if s.Dir == "" {
		return "", errors.New("empty context dir")
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, currentUserFile), nil
}

// SaveUserID сохраняет id пользователя в файл.
func (s ContextFSStore) SaveUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("empty user id")
	}
	p, err := s.path()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(userID), 0o600)
}

// LoadUserID читает id пользователя. Отсутствующий или пустой файл даёт ErrNoUser.
func (s ContextFSStore) LoadUserID() (string, error) {
	p, err := s.path()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoUser
	}
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(string(b))
	if id == "" {
		return "", ErrNoUser
	}
	return id, nil
}
