// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/foldertools/foldername/pkg/foldername"
	"github.com/foldertools/foldername/pkg/platform"

	"github.com/spf13/cobra"
)

// ruleSet is the machine-readable form of the naming rules.
type ruleSet struct {
	MaxLength          int      `json:"max_length" yaml:"max_length" toml:"max_length"`
	ReservedNames      []string `json:"reserved_names" yaml:"reserved_names" toml:"reserved_names"`
	InvalidCharacters  string   `json:"invalid_characters" yaml:"invalid_characters" toml:"invalid_characters"`
	TrailingCharacters string   `json:"trailing_characters" yaml:"trailing_characters" toml:"trailing_characters"`
	DefaultName        string   `json:"default_name" yaml:"default_name" toml:"default_name"`
	ReservedPrefix     string   `json:"reserved_prefix" yaml:"reserved_prefix" toml:"reserved_prefix"`
	Replacement        string   `json:"replacement" yaml:"replacement" toml:"replacement"`
	TruncationSuffix   string   `json:"truncation_suffix" yaml:"truncation_suffix" toml:"truncation_suffix"`
}

func newRulesCommand(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Describe the folder naming rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runRules(raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "markdown", false, "print the Markdown source instead of rendering it")
	return cmd
}

func (a *App) runRules(raw bool) error {
	if a.structured() {
		if err := writeStructured(a.stdout, a.settings.format, currentRuleSet()); err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		return nil
	}

	md := rulesMarkdown()
	if raw {
		fmt.Fprint(a.stdout, md)
		return nil
	}

	rendered, err := a.renderMarkdown(md)
	if err != nil {
		a.logger.Warn("failed to render rules", "error", err)
		fmt.Fprint(a.stdout, md)
		return nil
	}
	fmt.Fprint(a.stdout, rendered)
	return nil
}

func currentRuleSet() ruleSet {
	return ruleSet{
		MaxLength:          foldername.MaxLength,
		ReservedNames:      platform.ReservedDeviceNames(),
		InvalidCharacters:  foldername.InvalidPunctuation + " and U+0000-U+001F",
		TrailingCharacters: foldername.TrailingCharacters,
		DefaultName:        foldername.DefaultName,
		ReservedPrefix:     foldername.ReservedPrefix,
		Replacement:        string(foldername.Replacement),
		TruncationSuffix:   foldername.TruncationSuffix,
	}
}

func rulesMarkdown() string {
	quoted := func(items []string) string {
		out := make([]string, len(items))
		for i, s := range items {
			out[i] = "`" + s + "`"
		}
		return strings.Join(out, ", ")
	}

	var chars []string
	for _, r := range foldername.InvalidPunctuation {
		chars = append(chars, string(r))
	}

	var md strings.Builder
	md.WriteString("# Folder naming rules\n\n")
	md.WriteString("A name is valid when all of these hold:\n\n")
	md.WriteString("1. It is not empty and not made only of whitespace.\n")
	fmt.Fprintf(&md, "2. It is not a reserved device name, in any letter case: %s.\n", quoted(platform.ReservedDeviceNames()))
	fmt.Fprintf(&md, "3. It contains none of %s and no control character (U+0000 to U+001F).\n", quoted(chars))
	md.WriteString("4. It does not end with a period or a space.\n")
	fmt.Fprintf(&md, "5. It is at most %d characters long.\n\n", foldername.MaxLength)

	md.WriteString("# Correction\n\n")
	md.WriteString("`foldername fix` applies these steps in order:\n\n")
	fmt.Fprintf(&md, "1. A blank name becomes `%s`.\n", foldername.DefaultName)
	fmt.Fprintf(&md, "2. Every invalid character is replaced with `%c`.\n", foldername.Replacement)
	md.WriteString("3. Trailing periods and spaces are removed.\n")
	fmt.Fprintf(&md, "4. A reserved device name gets the prefix `%s`.\n", foldername.ReservedPrefix)
	fmt.Fprintf(&md, "5. A name longer than %d characters is cut and ends with `%s`.\n", foldername.MaxLength, foldername.TruncationSuffix)
	fmt.Fprintf(&md, "6. A name left blank becomes `%s`.\n", foldername.DefaultName)
	return md.String()
}
