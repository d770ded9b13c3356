// Package cfg provides configuration and command-line interface setup for tubaudio.
package cfg

import (
	"context"
	"strings"

	"tubaudio/internal/domain/keys"
	"tubaudio/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tubaudio",
	Short: "tubaudio downloads audio from video URLs onto a removable device.",
	Long: "tubaudio first downloads every URL listed in the batch file, then prompts for URLs\n" +
		"until 'quit' is entered. Audio is converted to MP3 and failures are appended to the failure log.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile := viper.GetString(keys.ConfigFile); configFile != "" {
			if err := loadConfigFile(cmd, configFile); err != nil {
				return err
			}
		}
		logging.Level = viper.GetInt(keys.DebugLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set(keys.RunDownloader, true)
		return nil
	},
}

// InitCommands initializes all commands and their flags.
func InitCommands() error {
	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // Convert "output-dir" to "OUTPUT_DIR"
	viper.AutomaticEnv()

	if err := initProgramFlags(rootCmd); err != nil {
		return err
	}
	if err := initFileFlags(rootCmd); err != nil {
		return err
	}
	if err := initDeviceFlags(rootCmd); err != nil {
		return err
	}
	if err := initExternalFlags(rootCmd); err != nil {
		return err
	}
	if err := initHistoryFlags(rootCmd); err != nil {
		return err
	}

	historyCmd, err := initHistoryCmd()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(historyCmd)
	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
