// Command gfxtools validates and round-trips refFlat annotation files
// through the gfxtools exon-feature inference engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	logger  *zap.SugaredLogger
	cfgFile string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gfxtools",
		Short:         "Tools for building and validating refFlat gene models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.gfxtools.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "enable verbose logging")
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRoundtripCmd())
	return cmd
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".gfxtools")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	var zcfg zap.Config
	if viper.GetBool("verbose") {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	built, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = built.Sugar()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gfxtools:", err)
		os.Exit(1)
	}
}
