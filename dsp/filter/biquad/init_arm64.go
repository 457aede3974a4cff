//go:build arm64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-carve/dsp/filter/biquad/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-carve/dsp/filter/biquad/internal/arch/generic"    // register generic backend
)
