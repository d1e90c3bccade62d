package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fcatools/wdcontext/modules/ui"
	"github.com/fcatools/wdcontext/modules/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	Root = &cobra.Command{
		Use:              "wdcontext",
		Short:            version.VersionStringShort(),
		SilenceErrors:    true,
		SilenceUsage:     true,
		TraverseChildren: true,
	}

	prerunhooks []func(cmd *cobra.Command, args []string) error

	loglevel     = Root.PersistentFlags().String("loglevel", "info", "Console log level")
	logfile      = Root.PersistentFlags().String("logfile", "", "File to log to")
	logfilelevel = Root.PersistentFlags().String("logfilelevel", "info", "Log file log level")

	// also available for subcommands
	Datapath = Root.PersistentFlags().String("datapath", "data", "folder to store and read cached data")
	Language = Root.PersistentFlags().String("language", "en", "language code for entity labels")

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show wdcontext version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.Info().Msg(version.ProgramVersionShort())
			return nil
		},
	}

	OverrideArgs []string
)

func bindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(f.Name) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(viper.GetStringSlice(f.Name))
			} else {
				f.Value.Set(viper.GetString(f.Name))
			}
		}
	})
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				sv.Replace(viper.GetStringSlice(f.Name))
			} else {
				f.Value.Set(viper.GetString(f.Name))
			}
		}
	})
	for _, subCommand := range cmd.Commands() {
		bindFlags(subCommand)
	}
}

func loadConfiguration(cmd *cobra.Command) {
	// Bind environment variables
	viper.SetEnvPrefix("WDCONTEXT_")
	viper.AutomaticEnv()

	configfilename := filepath.Join(*Datapath, "configuration.yaml")
	viper.SetConfigFile(configfilename)
	if err := viper.ReadInConfig(); err == nil {
		ui.Info().Msgf("Using configuration file: %v", viper.ConfigFileUsed())
	} else {
		ui.Debug().Msgf("No settings loaded from %v: %v", configfilename, err.Error())
	}

	bindFlags(cmd)
}

func init() {
	cobra.OnInitialize(func() {
		loadConfiguration(Root)
	})

	Root.AddCommand(versionCmd)
	Root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ll, err := ui.LogLevelString(*loglevel)
		if err != nil {
			ui.Error().Msgf("Invalid log level: %v - use one of: %v", *loglevel, ui.LogLevelStrings())
		} else {
			ui.SetLoglevel(ll)
		}

		if *logfile != "" {
			ll, err = ui.LogLevelString(*logfilelevel)
			if err != nil {
				ui.Error().Msgf("Invalid log file log level: %v - use one of: %v", *logfilelevel, ui.LogLevelStrings())
			} else {
				ui.SetLogFile(*logfile, ll)
			}
		}

		ui.Info().Msg(version.VersionString())

		// Ensure the data folder is available
		if _, err := os.Stat(*Datapath); os.IsNotExist(err) {
			err = os.MkdirAll(*Datapath, 0711)
			if err != nil {
				return fmt.Errorf("could not create data folder %v: %v", *Datapath, err)
			}
		}

		for _, prerunhook := range prerunhooks {
			err := prerunhook(cmd, args)
			if err != nil {
				return fmt.Errorf("prerun hook failed: %v", err)
			}
		}

		return nil
	}
}

func AddPreRunHook(f func(cmd *cobra.Command, args []string) error) {
	prerunhooks = append(prerunhooks, f)
}

func Run() error {
	if len(os.Args[1:]) == 0 && OverrideArgs != nil {
		Root.SetArgs(OverrideArgs)
	}

	return Root.Execute()
}
