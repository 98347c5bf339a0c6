package main

import (
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var RootCmd = &cobra.Command{
	Use:   "rbtree",
	Short: "red-black tree driver",
	Long:  "insert and delete integer keys in a red-black tree and print the resulting tree",

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
		return nil
	},
}

// dashed accepts --no_color for --no-color.
func dashed(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func init() {
	RootCmd.SetGlobalNormalizationFunc(dashed)
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().Bool("no-color", false, "print without colors")
	RootCmd.PersistentFlags().Uint("hint", 0, "number of nodes to reserve room for")

	RootCmd.AddCommand(demoCmd, runCmd, benchCmd)
}

func Execute() {
	viper.SetEnvPrefix("RBTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags")
	}

	log.SetFormatter(&prefixed.TextFormatter{FullTimestamp: true})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
