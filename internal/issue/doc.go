// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for the forge CLI.
//
// It contains two complementary pieces:
//
//   - ActionableError, a structured error carrying the failed operation,
//     the resource involved, and suggestions for fixing the problem.
//   - A catalog of rendered markdown "issue cards" keyed by Id, shown on
//     well-known failures (missing forgefile, unknown target, ...).
package issue
