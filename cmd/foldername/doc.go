// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for foldername.
//
// This package implements the Cobra command hierarchy for the foldername CLI:
// check and fix for names given as arguments or read line by line, demo for
// the built-in sample table, rules for the rendered rule set, and config for
// configuration management.
package cmd
