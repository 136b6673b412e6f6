package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/domain"
	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

var scanParallelFlag int

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a project tree and write the findings report",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return scanner.Scan(context.Background(), domain.ScanArgs{
				Root:         parseRoot(args),
				Out:          m.Path(viper.GetString(outputFlagName)),
				Format:       viper.GetString(formatFlagName),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				Threads:      viper.GetInt(scanParallelConfigKey),
				MaxFileBytes: viper.GetInt64(maxFileBytesConfigKey),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanParallelFlag, scanParallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of parallel workers for scanning")
	bindFlagToConfig(cmd.Flags().Lookup(scanParallelFlagName), scanParallelConfigKey)
}
