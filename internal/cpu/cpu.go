// Package cpu detects SIMD instruction set extensions for filter kernel
// selection.
//
// Detection runs once on the first DetectFeatures call and is cached.
// Tests can substitute a fixed feature set with SetForcedFeatures and
// restore hardware detection with ResetDetection.
package cpu

import (
	"sync"
)

// SIMDLevel identifies a SIMD instruction set extension.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone selects the pure Go fallback.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is x86-64 SSE2, the amd64 baseline.
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // x86-64 SSE2 (always true on amd64)
	HasAVX2 bool // x86-64 AVX2
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric disables all SIMD kernels regardless of hardware.
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	// detectMutex serializes detectOnce resets against in-flight detection.
	detectMutex sync.Mutex

	// forcedFeatures, when non-nil, overrides hardware detection.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// The first call performs detection; later calls return the cached result.
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection with a fixed feature set.
// Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
