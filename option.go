package difx

import (
	"io/fs"
	"log/slog"

	"github.com/lysShub/difx-go/embed"
)

type options struct {
	logger    *slog.Logger
	loader    Loader
	resources fs.FS
	tempDir   string
}

func defaultOptions() *options {
	return &options{
		logger:    discardLogger(),
		loader:    defaultLoader(),
		resources: embed.FS,
	}
}

type Option func(*options)

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithLoader replaces the platform loader, e.g. with a stub in tests.
func WithLoader(l Loader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}

// WithMemoryModule maps DIFxAPI with memmod instead of LoadLibrary, windows only.
func WithMemoryModule() Option {
	return func(o *options) {
		o.loader = memoryLoader()
	}
}

// WithResources sets the file system holding Resources/DIFxAPI_*.dll.
func WithResources(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.resources = fsys
		}
	}
}

// WithTempDir sets the directory of the extracted library, default os.TempDir.
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}
