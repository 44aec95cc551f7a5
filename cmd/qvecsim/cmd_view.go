package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qvecsim/render"
	"qvecsim/tui"
)

var viewPlain bool

var viewCmd = &cobra.Command{
	Use:   "view <file.qasm>",
	Short: "Step through a circuit interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		if viewPlain {
			fmt.Print(render.Diagram(c))
			return nil
		}
		return tui.Run(c)
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewPlain, "plain", false, "print the diagram and exit instead of opening the viewer")
	rootCmd.AddCommand(viewCmd)
}
