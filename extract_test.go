package difx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func Test_Extract(t *testing.T) {
	fsys := fstest.MapFS{
		"Resources/DIFxAPI_x64.dll": &fstest.MapFile{Data: []byte("x64")},
	}

	t.Run("unique", func(t *testing.T) {
		dir := t.TempDir()
		p1, err := extract(fsys, "Resources/DIFxAPI_x64.dll", dir)
		require.NoError(t, err)
		p2, err := extract(fsys, "Resources/DIFxAPI_x64.dll", dir)
		require.NoError(t, err)

		require.NotEqual(t, p1, p2)
		require.Equal(t, dir, filepath.Dir(p1))
		require.True(t, strings.HasSuffix(p1, ".dll"))

		b, err := os.ReadFile(p2)
		require.NoError(t, err)
		require.Equal(t, "x64", string(b))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := extract(fsys, "Resources/DIFxAPI_x86.dll", t.TempDir())
		var e *ErrResourceMissing
		require.True(t, errors.As(err, &e))
		require.Equal(t, "Resources/DIFxAPI_x86.dll", e.Name)
		require.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("read-failure", func(t *testing.T) {
		dir := t.TempDir()
		_, err := extract(brokenFS{}, "Resources/DIFxAPI_x64.dll", dir)
		require.ErrorIs(t, err, errBroken)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

var errBroken = errors.New("broken read")

type brokenFS struct{}

func (brokenFS) Open(name string) (fs.File, error) { return brokenFile{}, nil }

type brokenFile struct{}

func (brokenFile) Stat() (fs.FileInfo, error) { return nil, errBroken }
func (brokenFile) Read([]byte) (int, error)   { return 0, errBroken }
func (brokenFile) Close() error               { return nil }
