// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	InputReadFailedId
	SampleFileInvalidId
	InvalidOutputFormatId
	InvalidNamesFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference documentation for the rule or format involved
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the message followed by a "See also" list of links.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.MarkdownMsg()))
	if links := append(i.DocLinks(), i.ExtLinks()...); len(links) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range links {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return md.String()
}

// Render renders the issue with the named glamour style ("auto", "dark",
// "light" or "notty").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or did not match the schema.
Built-in defaults are used instead.

## Things you can try:
- Print the file being used:
~~~
$ foldername config path
~~~

- Regenerate a default file:
~~~
$ foldername config init
~~~

- Check that every value is one of the allowed ones:
~~~cue
output: format: "text" // text | json | yaml | toml
ui: color_scheme: "auto" // auto | dark | light | none
log: level: "warn" // debug | info | warn | error
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	inputReadFailedIssue = &Issue{
		id: InputReadFailedId,
		mdMsg: `
# Could not read names!

Names are read one per line from standard input or from a file.

## Things you can try:
- Pass names directly as arguments:
~~~
$ foldername check "my folder" "CON"
~~~

- Check that the file exists and is readable:
~~~
$ foldername fix --file names.txt
~~~

- Pipe names through standard input:
~~~
$ ls | foldername check --stdin
~~~`,
	}

	sampleFileInvalidIssue = &Issue{
		id: SampleFileInvalidId,
		mdMsg: `
# Invalid sample file!

A sample file is a CUE document with a non-empty list of strings.

## Example:
~~~cue
title: "my samples"
samples: ["CON", "report<2024>", "notes. "]
~~~

## Things you can try:
- Run the built-in demo without ` + "`--samples`" + `
- Make sure every sample is quoted`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	invalidOutputFormatIssue = &Issue{
		id: InvalidOutputFormatId,
		mdMsg: `
# Unknown output format!

Supported formats are ` + "`text`, `json`, `yaml` and `toml`" + `.

## Things you can try:
~~~
$ foldername check --format json "my folder"
~~~`,
	}

	invalidNamesFoundIssue = &Issue{
		id: InvalidNamesFoundId,
		mdMsg: `
# Some names are not valid folder names!

A folder name must not be blank, must not be a reserved device name such as
` + "`CON` or `LPT1`" + `, must not contain ` + "`< > : \" / \\ | ? *`" + ` or control
characters, must not end with a period or a space, and must be at most 255
characters long.

## Things you can try:
- Print corrected names:
~~~
$ foldername fix "my folder."
~~~

- See which correction steps apply:
~~~
$ foldername fix --explain "CON"
~~~`,
		docLinks: []HttpLink{"https://learn.microsoft.com/en-us/windows/win32/fileio/naming-a-file"},
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		inputReadFailedIssue.Id():     inputReadFailedIssue,
		sampleFileInvalidIssue.Id():   sampleFileInvalidIssue,
		invalidOutputFormatIssue.Id(): invalidOutputFormatIssue,
		invalidNamesFoundIssue.Id():   invalidNamesFoundIssue,
	}
)

// Get returns the catalog entry for id, or nil when there is none.
func Get(id Id) *Issue {
	return issues[id]
}
