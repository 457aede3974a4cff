//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads arm64 capabilities via golang.org/x/sys/cpu.
// NEON (Advanced SIMD) is mandatory on ARMv8, so HasNEON is true on real
// hardware.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
