// Package cli wires the pybake cobra commands. Commands never talk to the
// terminal directly; all output and prompting goes through the ui.Console
// collaborator held in deps, so tests can swap in a silent console.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pybake-dev/pybake/internal/ui"
	"github.com/pybake-dev/pybake/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "pybake",
	Short: "Create new Python projects with modern tooling setup",
	Long: `pybake scaffolds new Python projects with a modern toolchain:
uv for dependency management, ruff for linting and formatting, pyright
for static analysis, pytest for testing, pre-commit for git hooks, and
GitHub Actions for CI.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// dependencies holds the collaborators shared by CLI commands.
type dependencies struct {
	theme    *ui.Theme
	headless *ui.HeadlessManager
	console  ui.Console
}

var deps *dependencies

// InitDependencies builds the shared theme, headless detection, and console.
func InitDependencies() {
	theme := ui.NewTheme()
	hm := ui.NewHeadlessManager()
	deps = &dependencies{
		theme:    theme,
		headless: hm,
		console:  ui.NewConsole(theme, hm),
	}
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("pybake %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
