// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for simulate.
//
// Complexity: O(precincts * (sourceFamilies + targetColumns)) time,
// O(targetColumns) space per precinct.
//
// Determinism: a single rand.Rand seeded from Config.Seed is shared by
// all precincts and consumed in input order, one Gamma draw per target
// column of each precinct; identical (inputs, Config) always
// produce bit-identical PrecinctOutput slices.
package simulate
