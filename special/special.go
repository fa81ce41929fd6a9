// Package special evaluates special functions to double precision: Bessel
// functions of the first kind, exponential and trigonometric integrals, the
// complete elliptic integral of the first kind and the gamma function.
//
// Formula numbers refer to the NIST Digital Library of Mathematical Functions
// (https://dlmf.nist.gov).
package special

// EulerGamma is the Euler-Mascheroni constant.
const EulerGamma = 0.5772156649015329

// epsilon is the float64 machine epsilon
const epsilon = 0x1p-52
