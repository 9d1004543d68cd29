// Package lll reduces lattice bases with the Lenstra–Lenstra–Lovász algorithm.
//
// 🚀 What is LLL?
//
//	A lattice is the set of all integer combinations of a basis's row vectors.
//	LLL turns a basis into another basis of the same lattice whose vectors are
//	short and nearly orthogonal, in polynomial time. It is the workhorse of:
//	  • integer relation detection and knapsack attacks
//	  • simultaneous Diophantine approximation
//	  • lattice-based cryptanalysis
//
// ✨ Key features:
//   - classical Gram-Schmidt with explicit degeneracy detection (ErrDegenerateBasis)
//   - in-place reduction of a matrix.Dense; the basis is restored on failure
//   - δ validated to (0.25, 1) (ErrInvalidParameter)
//   - Check / GramDeterminant / IsUnimodular / Profile to certify results
//   - Measure for orthogonality defect, Hadamard ratio and shortest row
//
// ⚙️ Usage:
//
//	b, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {5, 1}})
//	if err := lll.Reduce(b, lll.DefaultDelta); err != nil {
//	  // handle ErrDegenerateBasis / ErrInvalidParameter
//	}
//	fmt.Print(b) // [1, 0]\n[0, 1]\n
//
// Performance:
//
//   - Every size-reduction step and every swap triggers a full O(m²·n)
//     re-orthogonalization.
//   - Arithmetic is float64 throughout; there is no exact or multi-precision mode.
package lll
