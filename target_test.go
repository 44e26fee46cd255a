package difx

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TargetDLL(t *testing.T) {
	require.Equal(t, "DIFxAPI_x64.dll", targetDLL(64))
	require.Equal(t, "DIFxAPI_x86.dll", targetDLL(32))

	if bits.UintSize == 64 {
		require.Equal(t, DLL64, TargetDLL())
	} else {
		require.Equal(t, DLL32, TargetDLL())
	}
}

func Test_ResourceName(t *testing.T) {
	require.Equal(t, "Resources/DIFxAPI_x64.dll", ResourceName(DLL64))
	require.Equal(t, "Resources/DIFxAPI_x86.dll", ResourceName(DLL32))
}
