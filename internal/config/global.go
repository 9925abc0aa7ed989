// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform config directory when non-empty.
// Tests set it so that config init, set and save never touch the real user
// configuration.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir, bypassing the
// APPDATA, Library/Application Support and XDG_CONFIG_HOME lookup.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset restores platform config directory resolution.
func Reset() {
	configDirOverride = ""
}
