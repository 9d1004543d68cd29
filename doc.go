// Package lattice is a small toolkit for reducing integer lattice bases with
// the Lenstra–Lenstra–Lovász (LLL) algorithm, and for checking the result.
//
// 🚀 What is lattice?
//
//	A focused, float64 implementation of classical LLL plus everything needed
//	to use it from code or from the shell:
//		• Dense row-major matrices with checked row operations
//		• Gram-Schmidt orthogonalization with degeneracy detection
//		• δ-LLL reduction with stats, iteration caps and zap logging
//		• Certificates: reduction check, Gram determinant, unimodular transform
//		• Basis quality: orthogonality defect, Hadamard ratio, GSO profile
//		• Basis files in text, JSON or YAML, optionally zstd-compressed
//
// ✨ Why choose lattice?
//
//   - Predictable – deterministic arithmetic, sentinel errors, no panics on bad input
//   - Safe – a failed reduction leaves the basis exactly as it was given
//   - Scriptable – the lll command speaks text and JSON with stable exit codes
//
// Under the hood, everything is organized under these packages:
//
//	matrix/       — Dense container, row operations, Mul/Transpose/Gram, row statistics
//	lll/          — Gram-Schmidt, Reducer, Check/IsUnimodular/Profile/Measure
//	basisio/      — reading and writing bases (text, JSON, YAML, .zst)
//	profile/      — GSO profile charts (PNG, SVG, PDF)
//	config/       — YAML/JSON settings and the zap logger
//	internal/cli/ — cobra commands behind cmd/lll
//
// Quick example:
//
//	b, _ := matrix.NewDenseFromRows([][]float64{{201, 37}, {1648, 297}})
//	_ = lll.Reduce(b, lll.DefaultDelta)
//	fmt.Print(b) // [1, 32]\n[40, 1]\n
//
//	go install github.com/katalvlaran/lattice/cmd/lll@latest
package lattice
