//go:build windows
// +build windows

package difx

import (
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// driverPackageProc wraps the export at addr with the signature shared by
// DriverPackageInstallW and DriverPackageUninstallW:
//
//	DWORD (PCWSTR DriverPackageInfPath, DWORD Flags, PCINSTALLERINFO_W pInstallerInfo, BOOL *pNeedReboot)
//
// The exports are cdecl, SyscallN restores the stack pointer after the call on 386.
func driverPackageProc(addr uintptr) Proc {
	return func(infPath string, flags uint32) (Result, error) {
		// avoid SyscallN(0,...) FAIL
		if addr == 0 {
			return Result{}, windows.ERROR_INVALID_HANDLE
		}

		path16, err := windows.UTF16PtrFromString(infPath)
		if err != nil {
			return Result{}, errors.WithStack(err)
		}

		var reboot int32 // BOOL
		r0, _, _ := syscall.SyscallN(
			addr,
			uintptr(unsafe.Pointer(path16)),
			uintptr(flags),
			0, // no extended installer info
			uintptr(unsafe.Pointer(&reboot)),
		)
		return Result{Code: uint32(r0), RebootRequired: reboot != 0}, nil
	}
}
