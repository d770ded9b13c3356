package cfg

import (
	"fmt"
	"strings"

	"tubaudio/internal/utils/logging"
	"tubaudio/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// loadConfigFile reads the config file into Viper.
//
// Config keys match flag names. Snake case spellings (e.g. "output_dir") are
// accepted for any flag not set on the command line.
func loadConfigFile(cmd *cobra.Command, file string) error {
	if _, err := validation.ValidateFile(file, false); err != nil {
		return err
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %q: %w", file, err)
	}
	logging.D(1, "Loaded config file %q", file)

	applySnakeCaseKeys(cmd.Flags())
	applySnakeCaseKeys(cmd.InheritedFlags())
	return nil
}

// applySnakeCaseKeys copies snake case config values onto their flag keys.
func applySnakeCaseKeys(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		snake := strings.ReplaceAll(f.Name, "-", "_")
		if snake == f.Name || !viper.InConfig(snake) || viper.InConfig(f.Name) {
			return
		}
		viper.Set(f.Name, viper.Get(snake))
		logging.D(2, "Config key %q applied to %q", snake, f.Name)
	})
}
