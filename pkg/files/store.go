package files

import (
	"context"
	"net/url"
	"os"
)

// Store abstracts the filesystem a navigator browses.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
