package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pybake-dev/pybake/internal/config"
	"github.com/pybake-dev/pybake/internal/core/project"
	"github.com/pybake-dev/pybake/internal/template"
	"github.com/pybake-dev/pybake/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new Python project with modern tooling setup",
	Long: `Create a new Python project directory with a build manifest,
lint/format/type-check configuration, CI pipeline, git hooks, a package
skeleton, and a starter test.

Examples:
  pybake create my-app                    Create ./my-app/ from the standard template
  pybake create my-app -p ~/src           Create ~/src/my-app/
  pybake create my-api -t web             Create a FastAPI project
  pybake create my-app --non-interactive  Skip all prompts and use defaults`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("path", "p", "", "Directory to create the project in (default: current directory)")
	createCmd.Flags().String("python", "", "Python version requirement (default: 3.12)")
	createCmd.Flags().StringP("description", "d", "", "Project description")
	createCmd.Flags().StringP("author", "a", "", "Project author")
	createCmd.Flags().StringP("email", "e", "", "Author email")
	createCmd.Flags().StringP("template", "t", "", "Project template: standard, minimal, or web")
	createCmd.Flags().Bool("non-interactive", false, "Skip interactive prompts; use flags and defaults")
	createCmd.Flags().Bool("force", false, "Overwrite an existing project directory without asking")
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	kind := getStringFlag(cmd, "template")
	if kind != "" && !template.IsValidKind(template.Kind(kind)) {
		return fmt.Errorf("invalid --template value %q: must be one of: standard, minimal, web", kind)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	console := deps.console

	if getBoolFlag(cmd, "non-interactive") {
		deps.headless.ForceHeadless(true)
	}

	defaults := config.Load()

	pythonVersion := getStringFlag(cmd, "python")
	if pythonVersion == "" {
		pythonVersion = defaults.PythonVersion
	}
	kind := getStringFlag(cmd, "template")
	if kind == "" {
		kind = defaults.Template
	}
	author := getStringFlag(cmd, "author")
	if author == "" {
		author = defaults.Author
	}
	email := getStringFlag(cmd, "email")
	if email == "" {
		email = defaults.Email
	}

	basePath := getStringFlag(cmd, "path")
	if basePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		basePath = cwd
	}
	projectPath := filepath.Join(basePath, name)

	// Existence check with overwrite confirmation (--force skips it).
	if _, err := os.Stat(projectPath); err == nil && !getBoolFlag(cmd, "force") {
		ok, err := console.Confirm(fmt.Sprintf("Project %q already exists. Overwrite?", name), false)
		if err != nil {
			return err
		}
		if !ok {
			console.Warnf("Operation cancelled.")
			return ui.ErrCancelled
		}
	}

	description := getStringFlag(cmd, "description")
	description, author, email, err := gatherProjectInfo(console, name, description, author, email)
	if err != nil {
		return err
	}

	cfg, err := project.NewConfig(project.Config{
		Name:          name,
		PythonVersion: pythonVersion,
		Description:   description,
		Author:        author,
		Email:         email,
		Template:      template.Kind(kind),
	})
	if err != nil {
		return err
	}

	showProjectSummary(console, cfg, projectPath)

	ok, err := console.Confirm("Proceed with project creation?", true)
	if err != nil {
		return err
	}
	if !ok {
		console.Warnf("Operation cancelled.")
		return ui.ErrCancelled
	}

	generator := project.NewGenerator(cfg)
	if err := console.Spin("Creating project...", func() error {
		return generator.Create(cmd.Context(), projectPath)
	}); err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	showSuccessMessage(console, cfg, projectPath)
	return nil
}

// gatherProjectInfo prompts for values not supplied via flags or the user
// defaults file. In headless mode the prompts return their defaults.
func gatherProjectInfo(console ui.Console, name, description, author, email string) (string, string, string, error) {
	var err error

	if description == "" {
		description, err = console.Prompt("Project description", project.DefaultDescription(name))
		if err != nil {
			return "", "", "", err
		}
	}
	if author == "" {
		author, err = console.Prompt("Author name", template.DefaultAuthor)
		if err != nil {
			return "", "", "", err
		}
	}
	if email == "" {
		email, err = console.Prompt("Author email", template.DefaultEmail)
		if err != nil {
			return "", "", "", err
		}
	}

	return description, author, email, nil
}

// showProjectSummary prints what is about to be generated.
func showProjectSummary(console ui.Console, cfg project.Config, projectPath string) {
	entry, err := template.Get(cfg.Template)
	if err != nil {
		return
	}

	console.Printf("")
	console.Printf("Project Summary")
	console.Printf("  Name:        %s", cfg.Name)
	console.Printf("  Path:        %s", projectPath)
	console.Printf("  Python:      %s", cfg.PythonVersion)
	console.Printf("  Template:    %s", entry.Name)
	console.Printf("  Description: %s", cfg.Description)
	if cfg.Author != "" {
		console.Printf("  Author:      %s", cfg.Author)
	}
	if cfg.Email != "" {
		console.Printf("  Email:       %s", cfg.Email)
	}
	console.Printf("")
	console.Printf("Tools to be configured:")
	for _, feature := range entry.Features {
		console.Printf("  - %s", feature)
	}
	console.Printf("")
}

// showSuccessMessage prints next steps after generation.
func showSuccessMessage(console ui.Console, cfg project.Config, projectPath string) {
	console.Successf("Project created successfully!")
	console.Printf("")
	console.Printf("Next steps:")
	console.Printf("  1. cd %s", projectPath)
	console.Printf("  2. git init")
	console.Printf("  3. uv sync")
	console.Printf("  4. uv run pytest")
	console.Printf("  5. Start coding in src/%s/", cfg.PackageName())
}
