// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for transfer.
//
// Complexity:
//   - MethodConvex:     O(iterations * nPrecincts * nSources * nTargets).
//   - MethodNNLS:       O(nTargets * nnlsMaxIter * nPrecincts * nSources^2).
//   - MethodClosedForm: O(nPrecincts * nSources^2) for the SVD of X.
//
// Errors: ErrInputEmpty, ErrDimensionMismatch (both fatal); a
// non-optimal convex termination is reported via Result.Status, never
// an error.
package transfer
