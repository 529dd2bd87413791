// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for catalog.
//
// catalog answers two questions, both election-scoped:
//
//	Info(code, election)       -> display name, color, leader (always succeeds)
//	FamilyOf(code, election)   -> longitudinal family id, if declared
//
// Resolution order for Info:
//  1. per-election override
//  2. base record
//  3. synthesized default (code as display name, neutral gray color)
//
// Complexity: O(1) per Info lookup (map access); O(log n) per FamilyOf
// lookup (union-find with union by rank; lookups do not compress paths).
package catalog
