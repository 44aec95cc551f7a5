package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "qvecsim",
	Short: "State-vector quantum circuit simulator",
	Long: `qvecsim simulates quantum circuits written in OpenQASM 2.0:
run them to a final state vector, sample measurement shots, step
through them interactively, route them onto a device coupling map, or
submit them to a job service.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
