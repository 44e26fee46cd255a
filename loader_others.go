//go:build !windows
// +build !windows

package difx

func defaultLoader() Loader { return unsupportedLoader{} }
func memoryLoader() Loader  { return unsupportedLoader{} }

type unsupportedLoader struct{}

func (unsupportedLoader) Load(string) (Library, error) { return nil, ErrUnsupported{} }
