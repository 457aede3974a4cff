// Command biquadinfo prints coefficients, pole locations, and frequency
// response tables for digital low-pass filter designs.
//
// Usage:
//
//	biquadinfo [flags]
//
// The response table shows the closed-form magnitude next to a spectrum
// measured from the filter's impulse response, so the design and the
// processing path can be compared at a glance.
//
// Examples:
//
//	biquadinfo
//	biquadinfo -cutoff 2000 -q 1.2
//	biquadinfo -cutoff 1000 -order 4
//	biquadinfo -rate 96000 -cutoff 3000 -order 5 -fft 4096
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-carve/dsp/filter/biquad"
	"github.com/cwbudde/algo-carve/dsp/filter/design"
	"github.com/cwbudde/algo-carve/measure/response"
)

func main() {
	cutoff := flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
	q := flag.Float64("q", 0.707, "quality factor (applies to -order 2 designs)")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	order := flag.Int("order", 2, "filter order (1=first-order, 2=RBJ biquad, >2=Butterworth cascade)")
	fftSize := flag.Int("fft", 2048, "FFT size for the measured response column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: biquadinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients, poles, and the magnitude response of a low-pass design.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -cutoff 2000 -q 1.2\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -cutoff 1000 -order 4\n")
		fmt.Fprintf(os.Stderr, "  biquadinfo -rate 96000 -cutoff 3000 -order 5 -fft 4096\n")
	}
	flag.Parse()

	if *rate <= 0 {
		fatalf("sample rate must be positive, got %g", *rate)
	}
	if *cutoff <= 0 || *cutoff >= *rate/2 {
		fatalf("cutoff must lie in (0, rate/2), got %g at rate %g", *cutoff, *rate)
	}
	if *q <= 0 {
		fatalf("q must be positive, got %g", *q)
	}
	if *order < 1 {
		fatalf("order must be at least 1, got %d", *order)
	}
	if *fftSize < 64 {
		fatalf("fft size must be at least 64, got %d", *fftSize)
	}

	sections := buildSections(*cutoff, *q, *rate, *order)
	chain := biquad.NewChain(sections)

	fmt.Printf("Low-pass design: cutoff=%g Hz rate=%g Hz order=%d sections=%d\n\n",
		*cutoff, *rate, *order, len(sections))

	printCoefficients(sections)
	printPoles(sections)
	printResponse(chain, *cutoff, *rate, *fftSize)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func buildSections(cutoff, q, rate float64, order int) []biquad.Coefficients {
	switch {
	case order == 1:
		return []biquad.Coefficients{design.LowpassFirstOrder(cutoff, rate)}
	case order == 2:
		return []biquad.Coefficients{design.Lowpass(cutoff, q, rate)}
	default:
		return design.ButterworthLP(cutoff, order, rate)
	}
}

func printCoefficients(sections []biquad.Coefficients) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Section\tB0\tB1\tB2\tA1\tA2\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t--\t--\t--\t--\t--\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for i, c := range sections {
		if _, err := fmt.Fprintf(tw, "%d\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\n",
			i, c.B0, c.B1, c.B2, c.A1, c.A2); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}
	fmt.Println()
}

func printPoles(sections []biquad.Coefficients) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Section\t|p1|\t|p2|\tStable\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t----\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for i := range sections {
		pz := sections[i].PoleZeroPair()
		if _, err := fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%t\n",
			i, cmplx.Abs(pz.Poles[0]), cmplx.Abs(pz.Poles[1]), sections[i].IsStable()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}
	fmt.Println()
}

func printResponse(chain *biquad.Chain, cutoff, rate float64, fftSize int) {
	ir := chain.ImpulseResponse(fftSize)
	dbs, err := response.MagnitudeDB(ir, fftSize)
	if err != nil {
		fatalf("response measurement failed: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tClosed form [dB]\tMeasured [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t----------------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	for _, m := range []float64{0.1, 0.25, 0.5, 1, 2, 4, 8} {
		f := m * cutoff
		if f >= rate/2 {
			continue
		}
		bin := int(math.Round(f / rate * float64(fftSize)))
		if bin > fftSize/2 {
			bin = fftSize / 2
		}
		fBin := response.BinFrequency(bin, fftSize, rate)
		if _, err := fmt.Fprintf(tw, "%.1f\t%+.2f\t%+.2f\n",
			fBin, chain.MagnitudeDB(fBin, rate), dbs[bin]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
