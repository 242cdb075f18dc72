// Package loader reads raw schema documents from files or fs.FS entries.
package loader

import (
	"context"
	"errors"
	"io/fs"
)

// Kind enumerates the supported source modalities.
type Kind string

const (
	KindFile Kind = "file"
	KindFS   Kind = "fs"
)

// Source identifies where a document originated.
type Source interface {
	Kind() Kind
	Location() string
}

type fileSource struct {
	path string
}

func (s fileSource) Kind() Kind       { return KindFile }
func (s fileSource) Location() string { return s.path }

// FileSource returns a Source for an on-disk document.
func FileSource(path string) Source {
	return fileSource{path: path}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Kind() Kind       { return KindFS }
func (s fsSource) Location() string { return s.name }

// FSSource returns a Source for an entry of fsys.
func FSSource(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

// Read fetches the raw bytes behind src.
func Read(ctx context.Context, src Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("loader: source is nil")
	}
	switch s := src.(type) {
	case fileSource:
		return loadFile(ctx, s.path)
	case fsSource:
		return loadFromFS(ctx, s.fsys, s.name)
	default:
		return nil, errors.New("loader: unsupported source kind")
	}
}
