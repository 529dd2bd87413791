// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for abstain.
//
// Complexity: O(rows) for Column; O(rows*cols) for Augment.
package abstain
