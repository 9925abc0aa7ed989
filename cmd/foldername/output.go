// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/foldertools/foldername/internal/config"
	"github.com/foldertools/foldername/pkg/foldername"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// displayLimit is how many runes of a name are shown in tables.
const displayLimit = 30

// report is the top-level document of every structured output. TOML needs
// a table at the root, so results are never emitted as a bare list.
type report[T any] struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Results []T    `json:"results" yaml:"results" toml:"results"`
}

// writeStructured encodes v to w in format. Text is not a structured format.
func writeStructured(w io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputFormatTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// newTable returns a bordered table with the app's header style.
func (a *App) newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(a.styles.Subtitle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.styles.Title.Padding(0, 1)
			}
			return a.styles.Cell
		})
}

// displayName quotes names that would be ambiguous on a terminal (empty,
// padded, malformed UTF-8, or holding non-printable runes) and clips long ones.
func displayName(name string) string {
	clipped := foldername.Clip(name, displayLimit)
	if name == "" || !utf8.ValidString(name) || strings.TrimSpace(name) != name || strings.IndexFunc(name, notPrintable) >= 0 {
		return strconv.Quote(clipped)
	}
	return clipped
}

func notPrintable(r rune) bool {
	return !unicode.IsPrint(r)
}
