// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"strings"

	"golang.org/x/exp/slices"
)

// reservedDeviceNames are the names Windows aliases to legacy devices.
// The set is read-only after package initialization.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
	"COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {},
	"LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// ReservedDeviceNames returns the reserved device names in upper case,
// sorted. The returned slice is a fresh copy.
func ReservedDeviceNames() []string {
	names := make([]string, 0, len(reservedDeviceNames))
	for name := range reservedDeviceNames {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsReservedDeviceName reports whether name, upper-cased, is exactly one of
// the reserved device names. Only whole-string matches count: "CONFIG" and
// "con.txt" are not reserved here.
func IsReservedDeviceName(name string) bool {
	_, ok := reservedDeviceNames[strings.ToUpper(name)]
	return ok
}
