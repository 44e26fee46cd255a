//go:build windows
// +build windows

package difx

import (
	"golang.org/x/sys/windows"
)

func defaultLoader() Loader { return SystemLoader{} }
func memoryLoader() Loader  { return MemoryLoader{} }

// SystemLoader loads libraries with LoadLibrary.
type SystemLoader struct{}

var _ Loader = SystemLoader{}

func (SystemLoader) Load(path string) (Library, error) {
	d, err := windows.LoadDLL(path)
	if err != nil {
		return nil, err
	}
	return (*systemLibrary)(d), nil
}

type systemLibrary windows.DLL

var _ Library = (*systemLibrary)(nil)

func (l *systemLibrary) FindProc(name string) (Proc, error) {
	p, err := (*windows.DLL)(l).FindProc(name)
	if err != nil {
		return nil, err
	}
	return driverPackageProc(p.Addr()), nil
}

func (l *systemLibrary) Release() error {
	return (*windows.DLL)(l).Release()
}
