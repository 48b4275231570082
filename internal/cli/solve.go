// solve.go implements the "eqtutor solve" command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
	"github.com/eqtutor/eqtutor/internal/ui"
)

var solveCmd = &cobra.Command{
	Use:   "solve <equation>",
	Short: "Solve an equation of the form ax + b = c",
	Long: `Parse an equation of the form ax + b = c and print its solution.
Equations starting with "-" must follow "--" so they are not read as flags.`,
	Example: `  eqtutor solve "2x + 3 = 7"
  eqtutor solve -- "-x - 5 = 10"
  eqtutor solve --json "2x = 5"`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var solveJSONFlag bool

func init() {
	solveCmd.Flags().BoolVar(&solveJSONFlag, "json", false, "Print the result as JSON")
}

// solveOutput is the --json shape.
type solveOutput struct {
	Equation    string   `json:"equation"`
	A           *big.Int `json:"a"`
	B           *big.Int `json:"b"`
	C           *big.Int `json:"c"`
	Description string   `json:"description"`
	Solution    any      `json:"solution"`
	Integer     bool     `json:"integer"`
	Fraction    string   `json:"fraction"`
}

// solveError is the --json shape of a failure.
type solveError struct {
	Equation string `json:"equation"`
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	raw := args[0]
	sess := session.New()
	res, err := sess.Resolve(raw)
	if err != nil {
		if !errors.Is(err, session.ErrEmptyEquation) {
			logWarn(cmd.ErrOrStderr(), env.logger.Append(log.Rejected("cli", sess.ID, raw, err)))
		}
		if solveJSONFlag {
			out := solveError{Equation: raw, Error: ui.FailureText(err)}
			if k := equation.KindOf(err); k != 0 {
				out.Kind = k.String()
			}
			if encErr := writeJSON(cmd, out); encErr != nil {
				return encErr
			}
		} else {
			printerFor(cmd).Failure(err)
		}
		return reported(fmt.Errorf("solving %q: %w", raw, err))
	}
	logWarn(cmd.ErrOrStderr(), env.logger.Append(log.Solved("cli", sess.ID, raw, res)))

	if solveJSONFlag {
		out := solveOutput{
			Equation:    raw,
			A:           res.Coefficients.A,
			B:           res.Coefficients.B,
			C:           res.Coefficients.C,
			Description: res.Description,
			Solution:    res.Solution,
			Integer:     res.Solution.IsInteger(),
			Fraction:    res.Solution.Fraction(),
		}
		return writeJSON(cmd, out)
	}

	printerFor(cmd).Result(res)
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
