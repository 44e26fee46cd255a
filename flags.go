package difx

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Flags is the DRIVER_PACKAGE_* bit-set passed verbatim to DIFxAPI.
//
//	https://learn.microsoft.com/en-us/windows-hardware/drivers/install/driverpackageinstall
type Flags uint32

const (
	Repair              Flags = 0x00000001 // DRIVER_PACKAGE_REPAIR
	Silent              Flags = 0x00000002 // DRIVER_PACKAGE_SILENT
	Force               Flags = 0x00000004 // DRIVER_PACKAGE_FORCE
	OnlyIfDevicePresent Flags = 0x00000008 // DRIVER_PACKAGE_ONLY_IF_DEVICE_PRESENT
	LegacyMode          Flags = 0x00000010 // DRIVER_PACKAGE_LEGACY_MODE
	DeleteFiles         Flags = 0x00000020 // DRIVER_PACKAGE_DELETE_FILES

	allFlags = Repair | Silent | Force | OnlyIfDevicePresent | LegacyMode | DeleteFiles
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Repair, "REPAIR"},
	{Silent, "SILENT"},
	{Force, "FORCE"},
	{OnlyIfDevicePresent, "ONLY_IF_DEVICE_PRESENT"},
	{LegacyMode, "LEGACY_MODE"},
	{DeleteFiles, "DELETE_FILES"},
}

// Valid reports whether f only contains defined bits.
func (f Flags) Valid() bool { return f&^allFlags == 0 }

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}

	var names []string
	for _, n := range flagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if rest := f &^ allFlags; rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// ParseFlags parses flag names separated by '|' or ',', e.g. "force|silent".
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		var found bool
		for _, n := range flagNames {
			if strings.EqualFold(field, n.name) {
				f |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Errorf("unknown driver package flag %q", field)
		}
	}
	return f, nil
}
