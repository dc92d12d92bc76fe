// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"cliforge/pkg/forgefile"
)

var (
	initForce    bool
	initTemplate string

	// initCmd creates a new forgefile
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a new forgefile in the current directory",
		Long: `Create a new forgefile in the current directory.

The default template also scaffolds an example entry point under
cmd/hello so the project builds immediately.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing forgefile")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "template to use (default, minimal)")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	filename := forgefile.DefaultFileName
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	project := projectNameFromDir(cwd)
	content, err := generateForgefile(initTemplate, project)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if initTemplate == "default" {
		if err := scaffoldHello(cwd); err != nil {
			return err
		}
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Declare your binaries as targets in the forgefile")
	fmt.Println("  2. Run 'forge list' to see the declared targets")
	fmt.Println("  3. Run 'forge build' to compile them")

	return nil
}

var nonNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// projectNameFromDir derives a schema-valid project name from the
// directory basename, falling back when nothing usable remains.
func projectNameFromDir(dir string) string {
	name := nonNameChars.ReplaceAllString(filepath.Base(dir), "-")
	for len(name) > 0 && !isLetter(name[0]) {
		name = name[1:]
	}
	if name == "" {
		return "myproject"
	}
	return name
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// generateForgefile renders the starter manifest for a template.
func generateForgefile(template, project string) (string, error) {
	switch template {
	case "minimal":
		return fmt.Sprintf(`project: %q

targets: [
	{
		name: "hello"
		path: "./cmd/hello"
	},
]
`, project), nil

	case "default":
		return fmt.Sprintf(`project:     %q
description: "Built with forge"
bin_dir:     "bin"

targets: [
	{
		name:        "hello"
		path:        "./cmd/hello"
		description: "Example binary; replace with your own"
	},
]
`, project), nil

	default:
		return "", fmt.Errorf("unknown template %q (expected default or minimal)", template)
	}
}

// scaffoldHello writes the example entry point the default template
// declares, skipping quietly if one already exists.
func scaffoldHello(root string) error {
	dir := filepath.Join(root, "cmd", "hello")
	main := filepath.Join(dir, "main.go")
	if _, err := os.Stat(main); err == nil {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	const src = `package main

import "fmt"

func main() {
	fmt.Println("Hello from forge!")
}
`
	if err := os.WriteFile(main, []byte(src), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", main, err)
	}
	return nil
}
