// Package embed holds the DIFxAPI redistributables, see Resources/README.md.
package embed

import (
	"embed"
)

// FS contains Resources/DIFxAPI_x64.dll and Resources/DIFxAPI_x86.dll.
//
//go:embed Resources
var FS embed.FS
