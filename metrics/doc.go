// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for metrics.
//
// Complexity: O(precincts * parties) for settlement aggregation,
// O(settlements log settlements) for HHI concentration thresholds,
// O(parties) per Pedersen/cosine/correlation call.
package metrics
