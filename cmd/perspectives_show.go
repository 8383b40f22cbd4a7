package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kiewb/perspectives/internal/presentation"
)

var perspectivesShowCmd = &cobra.Command{
	Use:   "perspectives:show <id-or-name>",
	Short: "Show a single perspective",
	Long: `Show a single perspective, looked up by test case ID or display name.

Examples:
  perspectives perspectives:show Process_\&_Task_Reports
  perspectives perspectives:show "Execution Servers" -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := perspectiveService.Lookup(args[0])
		if err != nil {
			return err
		}
		return newFormatter(cmd).FormatPerspective(presentation.FromDomainPerspective(p))
	},
}

func init() {
	rootCmd.AddCommand(perspectivesShowCmd)
}
