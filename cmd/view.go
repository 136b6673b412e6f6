package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View a previously written findings report",
		Long:  "Render a previously written CSV findings report in the terminal.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reportPath := m.Path(viper.GetString(outputFlagName))

			findings, err := reportStore.LoadFindings(reportPath)
			if err != nil {
				return err
			}

			return ui.DisplayReport(context.Background(), findings)
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
