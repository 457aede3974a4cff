// Package biquad provides biquad (second-order IIR) filter runtime primitives
// operating on float32 samples.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters. [Passthrough] gives the
// identity coefficient set.
//
// Processing is total: no call on the sample path can fail, allocate, or
// lock. Non-finite inputs and coefficients propagate per IEEE 754 arithmetic
// rather than being rejected.
//
// This package provides the processing runtime plus response analysis.
// Coefficient design lives in dsp/filter/design.
package biquad
