//go:build windows
// +build windows

package difx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func Test_DriverPackageError_Errno(t *testing.T) {
	err := error(&DriverPackageError{Op: "DriverPackageInstall", Code: 0xE000020B})
	require.True(t, errors.Is(err, windows.ERROR_NO_SUCH_DEVINST))

	err = &DriverPackageError{Op: "DriverPackageUninstall", Code: 5}
	require.True(t, errors.Is(err, windows.ERROR_ACCESS_DENIED))
	require.False(t, errors.Is(err, windows.ERROR_FILE_NOT_FOUND))
}
