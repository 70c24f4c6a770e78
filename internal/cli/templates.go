package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pybake-dev/pybake/internal/template"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details for one project template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesShowCmd)
}

func runTemplatesList(_ *cobra.Command, _ []string) error {
	console := deps.console

	console.Printf("Available project templates:")
	console.Printf("")
	for _, entry := range template.List() {
		console.Printf("  %-10s %s", entry.Kind, entry.Description)
	}
	console.Printf("")
	console.Printf("Use \"pybake templates show <id>\" for details.")
	return nil
}

func runTemplatesShow(_ *cobra.Command, args []string) error {
	entry, err := template.Get(template.Kind(args[0]))
	if err != nil {
		return err
	}

	md := templateMarkdown(entry)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// No styled renderer available; fall back to raw markdown.
		deps.console.Printf("%s", md)
		return nil
	}

	out, err := renderer.Render(md)
	if err != nil {
		deps.console.Printf("%s", md)
		return nil
	}

	deps.console.Printf("%s", strings.TrimRight(out, "\n"))
	return nil
}

// templateMarkdown builds the markdown detail view for a catalog entry.
func templateMarkdown(entry template.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", entry.Name)
	fmt.Fprintf(&b, "%s\n\n", entry.Description)
	b.WriteString("## Features\n\n")
	for _, feature := range entry.Features {
		fmt.Fprintf(&b, "- %s\n", feature)
	}
	return b.String()
}
