// Package csvio reads and writes matrices as plain comma-separated files.
//
// The format is one matrix row per line, cells separated by commas, no
// header and a trailing newline. Integers are written in base 10; floats in
// the shortest form that parses back to the same value. Every supported
// element type survives Store followed by Load unchanged.
//
// On top of the codec the package offers file-level helpers used by the
// matops CLI: TransposeFile, TransposeInPlace and MultiplyFiles.
package csvio
