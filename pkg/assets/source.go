// Package assets serves the page's static files from a local directory or an
// S3 bucket.
//
// A Source opens assets by slash-separated name ("logo/favicon-32x32.png").
// Handler maps request paths onto names, rejecting anything that could
// escape the source root, and streams the object with cache headers.
package assets

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned by a Source when no asset has the given name.
var ErrNotFound = errors.New("assets: not found")

// Object is an opened asset. The caller must close Body.
type Object struct {
	Body        io.ReadCloser
	Size        int64 // -1 if unknown
	ContentType string
	ModTime     time.Time
	ETag        string
}

// Source opens assets by name.
type Source interface {
	Open(ctx context.Context, name string) (*Object, error)
}
