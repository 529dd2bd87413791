// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for irregularity.
//
// Complexity: O(precincts * parties) for shared preparation and
// detector scoring; O(n_init * iterations * precincts * k) for the
// k-means fit, bounded by k <= 10 and a fixed iteration cap.
//
// Errors: ErrNoPrecincts when Score is called with an empty input
// slice. Individual precincts below MinValid are silently excluded from
// scoring rather than erroring, per the module's "skip, don't abort"
// propagation policy.
package irregularity
