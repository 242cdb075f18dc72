package codec

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// Source identifies where a schema document lives.
type Source = loader.Source

// SourceFromFile returns a Source pointing to a file on disk.
func SourceFromFile(path string) Source {
	return loader.FileSource(filepath.Clean(path))
}

// SourceFromFS returns a Source naming an entry inside fsys.
func SourceFromFS(fsys fs.FS, name string) Source {
	return loader.FSSource(fsys, name)
}

// Load reads the document behind src and decodes it using the format implied
// by its location. Like Import, it does not validate.
func Load(ctx context.Context, src Source) (schema.Schema, error) {
	data, err := loader.Read(ctx, src)
	if err != nil {
		return schema.Schema{}, err
	}
	return Decode(data, FormatForPath(src.Location()))
}
