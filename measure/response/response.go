package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response functions.
var (
	ErrEmptyResponse   = errors.New("response: impulse response is empty")
	ErrFFTSizeTooSmall = errors.New("response: fft size smaller than impulse response")
)

// Magnitude computes the single-sided magnitude spectrum of a measured
// impulse response. The response is zero-padded to fftSize and transformed;
// the returned slice holds fftSize/2+1 bins from DC to Nyquist.
//
// The FFT resolves sampleRate/fftSize Hz per bin, so longer transforms
// trade latency for frequency detail. Use [BinFrequency] to map a bin
// index back to Hz.
func Magnitude(ir []float32, fftSize int) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}
	if fftSize < len(ir) {
		return nil, ErrFFTSizeTooSmall
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(float64(v), 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// MagnitudeDB is Magnitude converted to decibels. Bins with zero
// magnitude come out as -Inf.
func MagnitudeDB(ir []float32, fftSize int) ([]float64, error) {
	mags, err := Magnitude(ir, fftSize)
	if err != nil {
		return nil, err
	}
	for i, m := range mags {
		mags[i] = 20 * math.Log10(m)
	}
	return mags, nil
}

// BinFrequency returns the center frequency in Hz of a spectrum bin.
func BinFrequency(bin, fftSize int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(fftSize)
}
