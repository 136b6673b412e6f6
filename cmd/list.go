package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List per-file finding counts",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return scanner.List(context.Background(), domain.ListArgs{
				Root:         parseRoot(args),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				Threads:      viper.GetInt(scanParallelConfigKey),
				MaxFileBytes: viper.GetInt64(maxFileBytesConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
