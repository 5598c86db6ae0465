// The cosimdriver command runs a co-simulation driver standalone: it loads
// a run file, hosts the driver on an in-process bus, and acts as both
// orchestrator and clock source for it.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cosimdriver",
	Short: "cosimdriver runs a simulation model in lock-step with a clock.",
	Long: `cosimdriver hosts one co-simulation driver. It loads the model ` +
		`bundle named by the run file, applies the configured initial values, ` +
		`and advances the model at a fixed step size, publishing the model's ` +
		`outputs after every step.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
