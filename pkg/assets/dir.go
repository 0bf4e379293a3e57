package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
)

// DirSource serves assets from a file system tree.
type DirSource struct {
	fsys fs.FS
	name string
}

// NewDirSource returns a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{fsys: os.DirFS(dir), name: dir}
}

// NewFSSource returns a source over fsys.
func NewFSSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys, name: "fs"}
}

// Open implements Source.
func (d *DirSource) Open(_ context.Context, name string) (*Object, error) {
	if !fs.ValidPath(name) {
		return nil, ErrNotFound
	}
	f, err := d.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("assets: open %s in %s: %w", name, d.name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("assets: stat %s in %s: %w", name, d.name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}
	return &Object{
		Body:        f,
		Size:        info.Size(),
		ContentType: contentType(name),
		ModTime:     info.ModTime(),
	}, nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// String names the source for logs.
func (d *DirSource) String() string { return "dir:" + d.name }
