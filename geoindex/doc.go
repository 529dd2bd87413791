// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for geoindex.
//
// Complexity: O(1) amortized per Put/Lookup call.
package geoindex
