// Package backup mirrors user and wedding documents to flat JSON files.
//
// The backup store is best-effort and never the source of truth while
// the primary store is reachable: writes rewrite the whole file on every
// mutation and callers log and swallow any error; reads serve only as
// the last link of the wedding resolver chain.
package backup

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/weddingcard/api/internal/model"
)

// ErrNotFound indicates the requested entity is not in the backup files.
var ErrNotFound = errors.New("not found in backup store")

const (
	usersFile    = "users.json"
	weddingsFile = "weddings.json"
)

// Store persists users and weddings as id-keyed JSON maps in two flat
// files under a single directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a backup store rooted at dir, creating the directory
// if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// SaveUser writes the user into users.json, rewriting the whole file.
func (s *Store) SaveUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := map[string]*model.User{}
	s.load(usersFile, &users)
	users[user.ID] = user
	return s.save(usersFile, users)
}

// SaveWedding writes the wedding into weddings.json, rewriting the whole
// file.
func (s *Store) SaveWedding(wedding *model.Wedding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	weddings := map[string]*model.Wedding{}
	s.load(weddingsFile, &weddings)
	weddings[wedding.ID] = wedding
	return s.save(weddingsFile, weddings)
}

// WeddingByID looks up a wedding by its internal identifier.
func (s *Store) WeddingByID(id string) (*model.Wedding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weddings := map[string]*model.Wedding{}
	s.load(weddingsFile, &weddings)
	if w, ok := weddings[id]; ok {
		return w, nil
	}
	return nil, ErrNotFound
}

// WeddingByShareableID scans for a wedding with the given shareable id.
func (s *Store) WeddingByShareableID(shareableID string) (*model.Wedding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weddings := map[string]*model.Wedding{}
	s.load(weddingsFile, &weddings)
	for _, w := range weddings {
		if w.ShareableID == shareableID {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

// load reads the named file into out. A missing or corrupt file is
// treated as empty, matching the recover-what-you-can role of a backup.
func (s *Store) load(name string, out interface{}) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

func (s *Store) save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}
