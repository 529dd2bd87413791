// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for canon.
//
// Complexity: O(len(name)) time and space.
package canon
