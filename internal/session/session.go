// Package session persists the logged-in session on the client.
//
// The token and user summary live under the keys "authToken" and "user" of a
// small badger store in the XDG state directory. A missing token means the
// client is not authenticated.
package session

import (
	"encoding/json"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/lifedash/internal/config"
	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/storage"
)

// Storage keys.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

// DefaultPath returns the session store directory.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, config.AppName, "session")
}

// Store reads and writes the client session.
type Store struct {
	db *storage.DB
}

// Open opens the session store at path. An empty path opens an in-memory
// store.
func Open(path string) (*Store, error) {
	db, err := storage.Open(storage.Options{Path: path})
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("session.Open", "failed to open session store", errors.WithStack(err))
	}
	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the token and user of a successful login.
func (s *Store) Save(sess *model.Session) error {
	if sess == nil || sess.Token == "" {
		return errors.NewSystemErrorWithOp("session.Save", "refusing to save an empty session", nil)
	}
	user, err := json.Marshal(sess.User)
	if err != nil {
		return errors.WithContext(err, "encode user")
	}
	err = s.db.SetAll(map[string][]byte{
		KeyUser:      user,
		KeyAuthToken: []byte(sess.Token),
	})
	return errors.WithContext(err, "save session")
}

// Load returns the stored session. It fails with ErrNotAuthenticated when no
// token is stored.
func (s *Store) Load() (*model.Session, error) {
	token, err := s.db.GetBytes(KeyAuthToken)
	if storage.IsErrKeyNotFound(err) {
		return nil, notAuthenticated()
	}
	if err != nil {
		return nil, errors.WithContext(err, "load token")
	}

	sess := &model.Session{Token: string(token)}
	if err := s.db.GetJSON(KeyUser, &sess.User); err != nil && !storage.IsErrKeyNotFound(err) {
		return nil, errors.WithContext(err, "load user")
	}
	return sess, nil
}

// Clear removes the stored session. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	return s.db.Delete(KeyAuthToken, KeyUser)
}

// IsAuthenticated reports whether a token is stored.
func (s *Store) IsAuthenticated() (bool, error) {
	return s.db.Exists(KeyAuthToken)
}

func notAuthenticated() error {
	return errors.NewUserErrorFor(errors.ErrNotAuthenticated,
		"Not logged in",
		"Run 'lifedash login' or start the dashboard with --guest")
}
