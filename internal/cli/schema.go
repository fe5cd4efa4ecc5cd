package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-IntakeService/internal/schema"
)

type schemaSummary struct {
	Name     string   `json:"name"`
	Selector string   `json:"selector"`
	Fields   []string `json:"fields"`
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [steps.yaml]",
		Short: "Check a step schema file and list its steps",
		Long: `Parse and check a step schema file the same way the service does on
startup and reload. Without an argument the built-in schemas are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := schema.Default()
			if len(args) == 1 {
				var err error
				if steps, err = schema.LoadFile(args[0]); err != nil {
					return err
				}
			}

			summary := make([]schemaSummary, 0, len(steps))
			for i := range steps {
				summary = append(summary, schemaSummary{
					Name:     steps[i].Name,
					Selector: steps[i].Selector,
					Fields:   steps[i].FieldNames(),
				})
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, summary)
			}
			for _, s := range summary {
				fmt.Fprintf(out, "%-18s %-24s %v\n", s.Name, s.Selector, s.Fields)
			}
			return nil
		},
	}

	return cmd
}
