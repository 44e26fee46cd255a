//go:build windows
// +build windows

package difx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

// fakeExport records one DriverPackage*W call and answers with code and reboot.
type fakeExport struct {
	calls  int
	path   string
	flags  uint32
	info   uintptr
	code   uint32
	reboot int32
}

var export = &fakeExport{}

var exportAddr = windows.NewCallbackCDecl(func(path *uint16, flags uint32, info uintptr, reboot *int32) uintptr {
	export.calls++
	export.path = windows.UTF16PtrToString(path)
	export.flags = flags
	export.info = info
	*reboot = export.reboot
	return uintptr(export.code)
})

func Test_DriverPackageProc(t *testing.T) {
	proc := driverPackageProc(exportAddr)

	t.Run("complete", func(t *testing.T) {
		*export = fakeExport{}

		r, err := proc(`C:\drivers\foo.inf`, uint32(Force|Silent))
		require.NoError(t, err)
		require.Equal(t, Result{}, r)

		require.Equal(t, 1, export.calls)
		require.Equal(t, `C:\drivers\foo.inf`, export.path)
		require.Equal(t, uint32(0x6), export.flags)
		require.Zero(t, export.info)
	})

	t.Run("reboot-required", func(t *testing.T) {
		*export = fakeExport{reboot: 1}

		r, err := proc(`C:\drivers\foo.inf`, uint32(DeleteFiles))
		require.NoError(t, err)
		require.True(t, r.RebootRequired)
		require.Zero(t, r.Code)
		require.Equal(t, uint32(DeleteFiles), export.flags)
	})

	t.Run("error-code", func(t *testing.T) {
		*export = fakeExport{code: 0x8007045B}

		r, err := proc(`C:\drivers\foo.inf`, 0)
		require.NoError(t, err)
		require.Equal(t, uint32(0x8007045B), r.Code)
		require.False(t, r.RebootRequired)
	})

	t.Run("nul-in-path", func(t *testing.T) {
		*export = fakeExport{}

		_, err := proc("a\x00b", 0)
		require.Error(t, err)
		require.Zero(t, export.calls)
	})
}
