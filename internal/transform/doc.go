// Package transform implements the DFT/IDFT backend family used for exact
// integer polynomial multiplication: a recursive divide-and-conquer
// transform, an iterative in-place transform built on bit-reversal and a
// butterfly network, and a lane-parallel direct-evaluation transform modeled
// on an accelerator kernel launch.
//
// All backends implement the Transformer interface and agree, within
// floating-point tolerance, on every power-of-two-length input. The inverse
// direction is normalized by 1/n inside the Transform call so that a forward
// transform followed by an inverse transform reconstructs the input.
package transform
