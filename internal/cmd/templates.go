package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustlay/cli/internal/output"
	"github.com/rustlay/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect feature templates",
	}

	cmd.AddCommand(NewTemplatesListCmd())

	return cmd
}

// NewTemplatesListCmd creates the templates list command.
func NewTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logical templates and where they come from",
		Long: `List the eight logical templates of the active source, in render order,
with the file each one is loaded from and the symbols it uses.`,
		Args: cobra.NoArgs,
		RunE: runTemplatesList,
	}
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	src, err := templateSource()
	if err != nil {
		return err
	}

	reg, err := templates.Load(src)
	if err != nil {
		return err
	}

	rows := make([]output.TemplateRow, 0, len(reg.Templates()))
	for _, t := range reg.Templates() {
		symbols, err := templates.Symbols(t)
		if err != nil {
			return err
		}
		rows = append(rows, output.TemplateRow{Name: t.Name, Origin: t.Origin, Symbols: symbols})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Templates from %s:\n", output.StyleNoun.Render(reg.Source()))
	fmt.Fprintln(w, output.RenderTemplateTable(rows))
	return nil
}
