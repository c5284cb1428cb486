package osfile

import (
	"context"
	"net/url"
	"os"

	"github.com/wanderfs/wander/pkg/files"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store is the local-disk files.Store.
type Store struct {
	title string
}

func NewStore() *Store {
	store := &Store{}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = "localhost"
	}
	return store
}

func (s *Store) RootTitle() string {
	return s.title
}

func (s *Store) RootURL() url.URL {
	return url.URL{Scheme: "file"}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}
