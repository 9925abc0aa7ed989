// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform naming constraints.
//
// It holds the Windows device names that cannot be used as a file or folder
// name on any Windows filesystem, and the OS name constants used when
// resolving platform-specific directories.
package platform
