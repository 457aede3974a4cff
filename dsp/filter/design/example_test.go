package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-carve/dsp/filter/biquad"
	"github.com/cwbudde/algo-carve/dsp/filter/design"
)

func ExampleLowpass() {
	c := design.Lowpass(1000, 0.707, 48000)

	fmt.Printf("cutoff: %.2f dB\n", c.MagnitudeDB(1000, 48000))
	fmt.Printf("20 kHz: %.0f dB\n", c.MagnitudeDB(20000, 48000))
	// Output:
	// cutoff: -3.01 dB
	// 20 kHz: -70 dB
}

func ExampleLowpassFirstOrder() {
	c := design.LowpassFirstOrder(1000, 48000)

	fmt.Printf("cutoff: %.2f dB\n", c.MagnitudeDB(1000, 48000))
	fmt.Printf("B2=%v A2=%v\n", c.B2, c.A2)
	// Output:
	// cutoff: -3.01 dB
	// B2=0 A2=0
}

func ExampleButterworthLP() {
	coeffs := design.ButterworthLP(1000, 4, 48000)
	chain := biquad.NewChain(coeffs)

	fmt.Printf("sections=%d order=%d\n", len(coeffs), chain.Order())
	fmt.Printf("cutoff: %.2f dB\n", chain.MagnitudeDB(1000, 48000))
	fmt.Printf("20 kHz: %.0f dB\n", chain.MagnitudeDB(20000, 48000))
	// Output:
	// sections=2 order=4
	// cutoff: -3.01 dB
	// 20 kHz: -140 dB
}
