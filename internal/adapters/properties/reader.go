// Package properties reads Java-style properties files and holds the
// system-property store.
package properties

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/magiconair/properties"
	"go.trai.ch/mvnrepo/internal/core/domain"
	"go.trai.ch/mvnrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileReader implements ports.PropertyFileReader for files on disk.
type FileReader struct {
	loader properties.Loader
}

// NewFileReader creates a FileReader. Files are decoded as ISO-8859-1 with
// \uXXXX escapes and ${...} references are kept literally.
func NewFileReader() ports.PropertyFileReader {
	return &FileReader{
		loader: properties.Loader{
			Encoding:         properties.ISO_8859_1,
			DisableExpansion: true,
		},
	}
}

// Read loads all entries of the properties file at path.
func (r *FileReader) Read(path string) (map[string]string, bool, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the build configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, unreadable(path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false, unreadable(path, err)
	}

	p, err := r.loader.LoadBytes(data)
	if err != nil {
		err = errors.Join(domain.ErrMalformedPropertyFile, err)
		return nil, false, zerr.With(zerr.Wrap(err, "failed to load property file"), "path", path)
	}

	return p.Map(), true, nil
}

func unreadable(path string, err error) error {
	err = errors.Join(domain.ErrPropertyFileUnreadable, err)
	return zerr.With(zerr.Wrap(err, "failed to read property file"), "path", path)
}
