// Package matrix multiplies dense numeric matrices with Strassen's algorithm.
//
// The matrix package provides:
//
//   - Dense[T], a row-major buffer generic over signed integers and floats,
//     with bounds-checked accessors that return errors instead of panicking.
//   - Strassen, the seven-product recursion over power-of-two squares with a
//     cubic base case below a configurable leaf size.
//   - Multiply, which pads arbitrary shapes to a power-of-two square, runs the
//     engine and extracts the m1×n2 product.
//   - MulNaive, Add, Sub, Transpose and AllClose for reference and testing.
//
// The leaf size is a per-call value (WithLeafSize or any LeafSizer); there is
// no package-level mutable state, so concurrent Multiply calls with different
// cutovers are safe.
//
// See the examples in this package and the calibrate package for choosing a
// leaf size on the host machine.
package matrix
