// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/foldername/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/foldername/config.cue on macOS, %APPDATA%\foldername\config.cue
// on Windows), falling back to ./config.cue. Values may be overridden with FOLDERNAME_*
// environment variables (for example FOLDERNAME_OUTPUT_FORMAT=json).
//
// Configuration files are validated against a CUE schema (config_schema.cue) before being
// merged into Viper, so type and enum errors are reported with the offending field path.
package config
