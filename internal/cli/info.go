package cli

import (
	"github.com/spf13/cobra"

	"github.com/pybake-dev/pybake/pkg/version"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about the CLI tool",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, _ []string) error {
	console := deps.console

	console.Printf("pybake %s", version.GetFullVersion())
	console.Printf("")
	console.Printf("This tool creates new Python projects with:")
	console.Printf("  - uv for dependency management")
	console.Printf("  - pyright for static analysis")
	console.Printf("  - ruff for linting and formatting")
	console.Printf("  - beartype for runtime type checking")
	console.Printf("  - pytest for testing")
	console.Printf("  - pre-commit for git hooks")
	console.Printf("  - GitHub Actions for CI/CD")
	console.Printf("")
	console.Printf("Use \"pybake create <name>\" to start a new project.")
	return nil
}
