package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
//
// Analysis runs in double precision over the widened single-precision
// coefficients.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(float64(c.B0), 0) + complex(float64(c.B1), 0)*ejw + complex(float64(c.B2), 0)*ej2w
	den := complex(1, 0) + complex(float64(c.A1), 0)*ejw + complex(float64(c.A2), 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression,
// avoiding complex exponentials.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := float64(c.B0), float64(c.B1), float64(c.B2)
	a1, a2 := float64(c.A1), float64(c.A2)

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// Magnitude returns |H(f)| from the closed-form magnitude-squared expression.
func (c *Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return mathSqrt(c.MagnitudeSquared(freqHz, sampleRate))
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * mathLog10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi], consistent with the standard DSP convention
// H(e^{-jw}).
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// MagnitudeResponse returns |H(f)| for each frequency in freqs.
//
// The complex responses are split into real and imaginary parts and the
// magnitudes computed in one batch, which uses SIMD implementations where
// available.
func (c *Coefficients) MagnitudeResponse(freqs []float64, sampleRate float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	for i, f := range freqs {
		h := c.Response(f, sampleRate)
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, len(freqs))
	vecmath.Magnitude(out, re, im)
	return out
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(float64(c.gain), 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return 20 * mathLog10(cmplx.Abs(h))
}

// MagnitudeResponse returns the cascaded |H(f)| for each frequency in freqs.
func (c *Chain) MagnitudeResponse(freqs []float64, sampleRate float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	for i, f := range freqs {
		h := c.Response(f, sampleRate)
		re[i] = real(h)
		im[i] = imag(h)
	}

	out := make([]float64, len(freqs))
	vecmath.Magnitude(out, re, im)
	return out
}

// ImpulseResponse computes n samples of the impulse response h[n]
// by feeding an impulse through the section. The filter state is
// saved and restored so this method does not modify the section.
func (s *Section) ImpulseResponse(n int) []float32 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]float32, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The chain state is saved and restored.
func (c *Chain) ImpulseResponse(n int) []float32 {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	c.Reset()
	ir := make([]float32, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}
	c.SetState(saved)
	return ir
}
