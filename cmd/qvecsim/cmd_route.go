package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qvecsim/qasm"
	"qvecsim/transpile"
)

var routeEdges []string

var routeCmd = &cobra.Command{
	Use:   "route <file.qasm>",
	Short: "Rewrite a circuit to fit a device coupling map",
	Long: `Route rewrites multi-qubit gates on non-adjacent qubits using SWAP
chains and prints the routed circuit as QASM. Without --edge the device
is a nearest-neighbour chain over the circuit's qubits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}

		cm, err := buildCoupling(c.NumQubits())
		if err != nil {
			return err
		}
		if cm.Fits(c) {
			log.Info("circuit already fits the device")
		}

		routed, err := transpile.Route(c, cm)
		if err != nil {
			return err
		}
		log.Debug("routed", "gates", c.NumGates(), "routed_gates", routed.NumGates())

		text, err := qasm.Encode(routed)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

// buildCoupling turns --edge flags like "1-2" into a coupling map, or
// falls back to a linear chain.
func buildCoupling(numQubits int) (*transpile.CouplingMap, error) {
	if len(routeEdges) == 0 {
		return transpile.Linear(numQubits)
	}
	edges := make([][2]int, 0, len(routeEdges))
	for _, e := range routeEdges {
		parts := strings.SplitN(e, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad edge %q, want a-b", e)
		}
		a, errA := strconv.Atoi(parts[0])
		b, errB := strconv.Atoi(parts[1])
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("bad edge %q, want a-b", e)
		}
		edges = append(edges, [2]int{a, b})
	}
	return transpile.NewCouplingMap(numQubits, edges)
}

func init() {
	routeCmd.Flags().StringArrayVar(&routeEdges, "edge", nil, "coupling edge as a-b (repeatable), default linear chain")
	rootCmd.AddCommand(routeCmd)
}
