// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: package-level documentation for config.
//
// Errors: ErrUnknownTransferMethod from ToTransferOptions when
// transfer_method names anything other than convex/nnls/closed_form.
package config
