// examples.go implements the "eqtutor examples" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/equation"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show how to use eqtutor and some valid equations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "How to use eqtutor:")
		fmt.Fprintln(w, "  1. Enter a first-degree equation of the form: ax + b = c")
		fmt.Fprintln(w, "  2. Resolve it to see the solution")
		fmt.Fprintln(w, "  3. Try solving it yourself and enter your answer")
		fmt.Fprintln(w, "  4. Verify your answer to see if it is correct")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Valid equations:")
		for _, ex := range equation.Examples {
			fmt.Fprintf(w, "  %s\n", ex)
		}
		return nil
	},
}
