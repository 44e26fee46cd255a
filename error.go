package difx

import (
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// ErrResourceMissing is returned when the embedded DIFxAPI variant is absent.
type ErrResourceMissing struct {
	Name string
}

func (e *ErrResourceMissing) Error() string {
	return fmt.Sprintf("embedded resource %s not found", e.Name)
}
func (e *ErrResourceMissing) Unwrap() error { return fs.ErrNotExist }

// ErrLoad is returned when the extracted library is rejected by the loader.
type ErrLoad struct {
	Path string
	Err  error
}

func (e *ErrLoad) Error() string { return fmt.Sprintf("load %s: %s", e.Path, e.Err) }
func (e *ErrLoad) Unwrap() error { return e.Err }

// ErrSymbolNotFound is returned when an expected export is missing, usually
// because the wrong DIFxAPI version was embedded.
type ErrSymbolNotFound struct {
	Name string
	Err  error
}

func (e *ErrSymbolNotFound) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("symbol %s not found", e.Name)
	}
	return fmt.Sprintf("symbol %s not found: %s", e.Name, e.Err)
}
func (e *ErrSymbolNotFound) Unwrap() error { return e.Err }

// DriverPackageError carries the non-zero code returned by DIFxAPI.
type DriverPackageError struct {
	Op   string
	Code uint32
}

func (e *DriverPackageError) Error() string {
	return fmt.Sprintf("%s failed with DIFxAPI error 0x%08X", e.Op, e.Code)
}

// ErrClosed is returned by calls on a closed DIFx, it matches os.ErrClosed.
type ErrClosed struct{}

func (ErrClosed) Error() string        { return "difx closed" }
func (ErrClosed) Is(target error) bool { return target == os.ErrClosed }

// ErrUnsupported is returned by the default loader outside windows.
type ErrUnsupported struct{}

func (ErrUnsupported) Error() string { return "difx not support " + runtime.GOOS }
