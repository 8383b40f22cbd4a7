package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kiewb/perspectives/internal/presentation"
)

var perspectivesMatrixCmd = &cobra.Command{
	Use:   "perspectives:matrix",
	Short: "Show the perspective test matrix for every distribution",
	Long: `Show, for every distribution, the IDs of the perspectives a test run enumerates.

Examples:
  perspectives perspectives:matrix -o table
  perspectives perspectives:matrix | jq '.[] | select(.distribution == "kie-wb")'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := perspectiveService.Matrix(cmd.Context())
		if err != nil {
			return err
		}

		dtos := make([]presentation.MatrixRowDTO, len(rows))
		for i, row := range rows {
			dtos[i] = presentation.NewMatrixRow(row.Distribution, row.Perspectives)
		}
		return newFormatter(cmd).FormatMatrix(dtos)
	},
}

func init() {
	rootCmd.AddCommand(perspectivesMatrixCmd)
}
