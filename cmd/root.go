package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/fastobj/cmd/bench"
	"github.com/ValentinKolb/fastobj/cmd/util"
	"github.com/ValentinKolb/fastobj/lib/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "fastobj",
		Short: "dictionary-compressing binary object codec",
		Long: fmt.Sprintf(`fastobj (v%s)

A compact, dictionary-compressing binary object codec written in Go.
Repeated record types and strings are transmitted once per channel and
referenced by single-byte dictionary IDs afterwards.`, Version),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			common.InitLoggers(viper.GetString("log-level"))
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fastobj",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fastobj v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
