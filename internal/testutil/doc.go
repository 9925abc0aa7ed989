// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error and
// return cleanup functions, for working-directory and environment changes.
package testutil
