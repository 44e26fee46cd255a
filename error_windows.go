//go:build windows
// +build windows

package difx

import "golang.org/x/sys/windows"

// Unwrap exposes the code as a windows.Errno, DIFxAPI returns Win32 and
// SetupAPI codes, e.g. windows.ERROR_NO_SUCH_DEVINST.
func (e *DriverPackageError) Unwrap() error { return windows.Errno(e.Code) }
