// Package design provides digital IIR lowpass coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: a second-order RBJ lowpass
// ([Lowpass]), a first-order bilinear-transform lowpass
// ([LowpassFirstOrder]), and higher-order Butterworth cascades
// ([ButterworthLP]) returning cascaded sections.
//
// Designers run their formulas in double precision and narrow the result to
// the single-precision coefficient storage on return. They perform no
// parameter validation: non-finite or out-of-range inputs propagate through
// the math per IEEE 754, and the returned coefficients may be non-finite.
package design
