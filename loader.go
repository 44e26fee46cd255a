package difx

// Result is the outcome of one DriverPackage*W call.
type Result struct {
	// Code is the raw DWORD returned, 0 on success.
	Code uint32

	RebootRequired bool
}

// Proc calls a resolved DriverPackageInstallW/DriverPackageUninstallW export.
type Proc func(infPath string, flags uint32) (Result, error)

// Library is a native library loaded by a Loader.
type Library interface {
	FindProc(name string) (Proc, error)
	Release() error
}

// Loader loads the native library at path.
type Loader interface {
	Load(path string) (Library, error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(path string) (Library, error)

func (f LoaderFunc) Load(path string) (Library, error) { return f(path) }
