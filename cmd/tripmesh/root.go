package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/tripmesh/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tripmesh",
	Short: "Multi-agent travel planning from the terminal",
	Long: `Tripmesh coordinates a small team of agents over a shared message
board to plan a trip: a planner decomposes the request into tasks, a
researcher gathers attractions and weather, a booker reserves a hotel, and
a summarizer renders the final itinerary.

The kopitiam subcommand runs the free-form conversation variant instead,
where a model-driven coordinator passes the floor between local personas.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .tripmesh.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(kopitiamCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig loads an optional config file and wires TRIPMESH_* environment
// variables. Flags take precedence over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tripmesh")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("provider", "mock")
	viper.SetDefault("model", "")
	viper.SetDefault("volleys", 0)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetEnvPrefix("TRIPMESH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
	}
}

// buildLogger builds the run logger from the resolved configuration. Logs go
// to stderr so the board and report stay clean on stdout.
func buildLogger() logging.Logger {
	return logging.NewSlogLogger(
		logging.ParseLevel(viper.GetString("log.level")),
		viper.GetString("log.format"),
	)
}
