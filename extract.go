package difx

import (
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

const tempPattern = "difxapi-*.dll"

// extract copies resource name of fsys into a new uniquely named file in dir.
func extract(fsys fs.FS, name, dir string) (path string, err error) {
	src, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &ErrResourceMissing{Name: name}
		}
		return "", errors.WithStack(err)
	}
	defer src.Close()

	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = io.Copy(f, src); err != nil {
		return "", errors.WithStack(err)
	}
	if err = f.Close(); err != nil {
		return "", errors.WithStack(err)
	}
	return f.Name(), nil
}
