//go:build windows
// +build windows

package difx

import (
	"os"

	"github.com/pkg/errors"
	"golang.zx2c4.com/wireguard/windows/driver/memmod"
)

// MemoryLoader maps the library image into memory with memmod, the file on
// disk is only read once and never locked by the OS loader.
type MemoryLoader struct{}

var _ Loader = MemoryLoader{}

func (MemoryLoader) Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	m, err := memmod.LoadLibrary(data)
	if err != nil {
		return nil, err
	}
	return (*memoryLibrary)(m), nil
}

type memoryLibrary memmod.Module

var _ Library = (*memoryLibrary)(nil)

func (l *memoryLibrary) FindProc(name string) (Proc, error) {
	addr, err := (*memmod.Module)(l).ProcAddressByName(name)
	if err != nil {
		return nil, err
	}
	return driverPackageProc(addr), nil
}

func (l *memoryLibrary) Release() error {
	(*memmod.Module)(l).Free()
	return nil
}
