package design

import (
	"math"

	"github.com/cwbudde/algo-carve/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// The cascade has a maximally flat passband and is 3.01 dB down at freq
// for every order. For odd orders, the final section is first-order
// (B2=A2=0). Orders below 1 have no sections and return nil.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Lowpass(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, LowpassFirstOrder(freq, sampleRate))
	}
	return sections
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}
