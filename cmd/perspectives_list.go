package cmd

import (
	"github.com/spf13/cobra"

	appperspectives "github.com/kiewb/perspectives/internal/application/perspectives"
	"github.com/kiewb/perspectives/internal/presentation"
)

var (
	listDistribution string
	listMenu         string
)

var perspectivesListCmd = &cobra.Command{
	Use:   "perspectives:list",
	Short: "List the perspectives present in a distribution",
	Long: `List the perspectives present in a distribution, in test enumeration order.

Without --distribution the distribution from the config file is used.
Use --menu to keep only perspectives under one top level menu ("N/A" for
items shown directly in the navigation bar).

Examples:
  # Perspectives of the configured distribution
  perspectives perspectives:list

  # Perspectives of the monitoring distribution
  perspectives perspectives:list --distribution kie-wb-monitoring
  perspectives perspectives:list -d KIE_WB_MONITORING

  # Only the Manage menu, as a table
  perspectives perspectives:list -d kie-wb --menu Manage -o table

  # Test case IDs with jq
  perspectives perspectives:list | jq -r '.[].id'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := resolveDistribution(listDistribution)
		if err != nil {
			return err
		}

		ps, err := perspectiveService.Find(cmd.Context(), appperspectives.Query{
			Distribution: d,
			Menu:         listMenu,
		})
		if err != nil {
			return err
		}

		return newFormatter(cmd).FormatPerspectives(presentation.FromDomainPerspectives(ps))
	},
}

func init() {
	perspectivesListCmd.Flags().StringVarP(&listDistribution, "distribution", "d", "", "Distribution under test (e.g., kie-wb)")
	perspectivesListCmd.Flags().StringVarP(&listMenu, "menu", "m", "", "Filter by top level menu (e.g., Manage)")
	rootCmd.AddCommand(perspectivesListCmd)
}
