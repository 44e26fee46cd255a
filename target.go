package difx

import (
	"math/bits"
	"path"
)

const (
	// DLL64 is the DIFxAPI variant loaded by 64-bit processes.
	DLL64 = "DIFxAPI_x64.dll"
	// DLL32 is the DIFxAPI variant loaded by every other process.
	DLL32 = "DIFxAPI_x86.dll"

	resourceDir = "Resources"
)

// TargetDLL returns the DIFxAPI variant matching the pointer width of the running process.
func TargetDLL() string { return targetDLL(bits.UintSize) }

func targetDLL(ptrBits int) string {
	if ptrBits == 64 {
		return DLL64
	}
	return DLL32
}

// ResourceName returns the path of variant inside the embedded resources.
func ResourceName(variant string) string {
	return path.Join(resourceDir, variant)
}
