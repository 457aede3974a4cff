package design

import (
	"math"

	"github.com/cwbudde/algo-carve/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// Lowpass designs a lowpass biquad at freq (Hz) with quality factor q.
//
// The formula follows the RBJ Audio EQ Cookbook: the section has unity DC
// gain and its magnitude at freq is exactly q. All math runs in double
// precision; the result is narrowed to single precision on return.
//
// It performs no parameter validation: out-of-range or non-finite inputs
// flow through the formulas per IEEE 754.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return biquad.Coefficients{
		B0: float32(b0 / a0),
		B1: float32(b1 / a0),
		B2: float32(b2 / a0),
		A1: float32(a1 / a0),
		A2: float32(a2 / a0),
	}
}

// LowpassFirstOrder designs a first-order lowpass section (B2=A2=0) using
// the bilinear transform with frequency prewarping. It is the odd-order
// tail section of Butterworth cascades and is usable standalone for gentle
// 6 dB/octave rolloffs.
//
// Like Lowpass, it performs no parameter validation.
func LowpassFirstOrder(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: float32(k * norm),
		B1: float32(k * norm),
		A1: float32((k - 1) * norm),
	}
}
