package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/presentation"
)

var distributionsListCmd = &cobra.Command{
	Use:   "distributions:list",
	Short: "List the known distributions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dists := distribution.All()
		dtos := make([]presentation.DistributionDTO, len(dists))
		for i, d := range dists {
			ps, err := perspectiveService.ForDistribution(cmd.Context(), d)
			if err != nil {
				return err
			}
			dtos[i] = presentation.DistributionDTO{Name: d.String(), Perspectives: len(ps)}
		}
		return newFormatter(cmd).FormatDistributions(dtos)
	},
}

func init() {
	rootCmd.AddCommand(distributionsListCmd)
}
