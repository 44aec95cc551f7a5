package main

import (
	"fmt"
	"math/cmplx"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qvecsim/circuit"
	"qvecsim/linalg"
	"qvecsim/qasm"
	"qvecsim/sim"
)

var runHideZero bool

var runCmd = &cobra.Command{
	Use:   "run <file.qasm>",
	Short: "Simulate a circuit and print the final state vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		log.Debug("circuit loaded", "qubits", c.NumQubits(), "depth", c.Depth(), "gates", c.NumGates())

		state := sim.Run(c)
		probs := sim.Probabilities(state)
		n := c.NumQubits()

		for idx, amp := range state {
			if runHideZero && cmplx.Abs(amp) < linalg.Tol {
				continue
			}
			fmt.Printf("|%0*b⟩  %+.6f%+.6fi   p=%.6f\n", n, idx, real(amp), imag(amp), probs[idx])
		}
		return nil
	},
}

var shotsCount int
var shotsSeed int64

var shotsCmd = &cobra.Command{
	Use:   "shots <file.qasm>",
	Short: "Sample measurement shots from a circuit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}

		seed := shotsSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		sampler := sim.NewSeededSampler(seed)
		outcomes, err := sampler.Shots(c, shotsCount)
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, label := range outcomes {
			counts[label]++
		}
		labels := make([]string, 0, len(counts))
		for label := range counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("%s  %d\n", label, counts[label])
		}
		return nil
	},
}

// loadCircuit reads and parses a QASM file.
func loadCircuit(path string) (*circuit.Circuit, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return qasm.Parse(string(text))
}

func init() {
	runCmd.Flags().BoolVar(&runHideZero, "hide-zero", false, "omit zero-amplitude basis states")
	shotsCmd.Flags().IntVarP(&shotsCount, "shots", "n", 1024, "number of shots")
	shotsCmd.Flags().Int64Var(&shotsSeed, "seed", 0, "sampler seed, 0 uses the current time")
	rootCmd.AddCommand(runCmd, shotsCmd)
}
