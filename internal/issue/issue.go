// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a well-known failure with a rendered issue card.
type Id int

const (
	ForgefileNotFoundId Id = iota + 1
	ForgefileParseErrorId
	TargetNotFoundId
	ToolchainNotFoundId
	BuildFailedId
	HookFailedId
	ConfigLoadFailedId
)

// MarkdownMsg is the markdown body of an issue card.
type MarkdownMsg string

// Issue is a documented, user-facing failure mode. Cards are rendered
// with glamour and printed below the terse error message.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue card markdown with the given glamour style
// (e.g. "dark", "light", "auto").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	forgefileNotFoundIssue = &Issue{
		id: ForgefileNotFoundId,
		mdMsg: `
# No forgefile found!

We searched from the current directory up to the filesystem root but
couldn't find a forgefile.cue.

## Things you can try:
- Create a forgefile in your project directory:
~~~
$ forge init
~~~

- Or run forge from inside a project that has one:
~~~
$ cd /path/to/your/project
$ forge list
~~~

## Example forgefile structure:
~~~cue
project: "myproject"

targets: [
	{
		name: "mytool"
		path: "./cmd/mytool"
	},
]
~~~`,
	}

	forgefileParseErrorIssue = &Issue{
		id: ForgefileParseErrorId,
		mdMsg: `
# Failed to parse forgefile!

Your forgefile contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Target names that don't match ` + "`[a-z][a-z0-9_-]*`" + `
- Missing required fields (project, target name, target path)

## Things you can try:
- Check the error message above for the specific field
- Run with verbose mode for more details:
~~~
$ forge --verbose list
~~~

## Example of a valid target:
~~~cue
targets: [
	{
		name:        "mytool"
		path:        "./cmd/mytool"
		description: "Does the thing"
		tags: ["netgo"]
	},
]
~~~`,
	}

	targetNotFoundIssue = &Issue{
		id: TargetNotFoundId,
		mdMsg: `
# Target not found!

The binary target you named is not declared in the forgefile.
Targets are selected by their declared name, not by file path.

## Things you can try:
- List all declared targets:
~~~
$ forge list
~~~

- Check for typos in the target name
- Add the target to your forgefile:
~~~cue
targets: [
	{
		name: "mytool"
		path: "./cmd/mytool"
	},
]
~~~`,
	}

	toolchainNotFoundIssue = &Issue{
		id: ToolchainNotFoundId,
		mdMsg: `
# Go toolchain not found!

forge shells out to the ` + "`go`" + ` tool for check, build, and run
operations, but it is not on your PATH.

## Things you can try:
- Install Go: https://go.dev/dl/
- Verify the installation:
~~~
$ go version
~~~
- Make sure your shell's PATH includes the Go bin directory`,
	}

	buildFailedIssue = &Issue{
		id: BuildFailedId,
		mdMsg: `
# Build failed!

The Go toolchain reported errors while compiling the target.

## Things you can try:
- Read the compiler output above; it names the offending files
- Check the target declaration in the forgefile points at the right package:
~~~
$ forge list
~~~
- Run the check operation to see all diagnostics without producing binaries:
~~~
$ forge check
~~~`,
	}

	hookFailedIssue = &Issue{
		id: HookFailedId,
		mdMsg: `
# Prebuild hook failed!

The target's prebuild script exited with a non-zero status, so the
operation was aborted.

## Things you can try:
- Run with verbose mode to see the hook's exit code:
~~~
$ forge --verbose build <target>
~~~
- Test the script in a POSIX shell; the built-in interpreter is POSIX-compatible
- Remove or fix the ` + "`prebuild`" + ` field of the target`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the forge configuration file.

## Configuration file locations:
- Linux: ~/.config/forge/config.cue
- macOS: ~/Library/Application Support/forge/config.cue
- Windows: %APPDATA%\forge\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ forge config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
bin_dir: "bin"
jobs:    4

ui: {
	color_scheme: "auto"
	verbose:      false
}
~~~`,
	}

	issues = map[Id]*Issue{
		forgefileNotFoundIssue.Id():   forgefileNotFoundIssue,
		forgefileParseErrorIssue.Id(): forgefileParseErrorIssue,
		targetNotFoundIssue.Id():      targetNotFoundIssue,
		toolchainNotFoundIssue.Id():   toolchainNotFoundIssue,
		buildFailedIssue.Id():         buildFailedIssue,
		hookFailedIssue.Id():          hookFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns all registered issues in unspecified order.
func Values() []*Issue {
	return maps.Values(issues)
}

// Get returns the issue registered for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Sorted returns all registered issues sorted by Id.
func Sorted() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return vals
}
