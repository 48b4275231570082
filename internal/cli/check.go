// check.go implements the "eqtutor check" command, which solves an equation
// and verifies a guess against it.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/celebrate"
	"github.com/eqtutor/eqtutor/internal/equation"
	"github.com/eqtutor/eqtutor/internal/log"
	"github.com/eqtutor/eqtutor/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check <equation> <guess>",
	Short: "Check your answer to an equation",
	Long: `Solve the equation and compare your guess with the exact solution.
Guesses are whole numbers unless --exact is given or guess.allow_fractions is
set in .eqtutor/config.yaml.`,
	Example: `  eqtutor check "2x + 3 = 7" 2
  eqtutor check "5x + 2 = -3" -1
  eqtutor check --exact "2x = 5" 5/2`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

var exactFlag bool

var errWrongGuess = errors.New("wrong answer")

func init() {
	checkCmd.Flags().BoolVar(&exactFlag, "exact", false, "Accept decimal and fraction guesses")
	// Flags stop at the first argument so a negative guess is not read as one.
	checkCmd.Flags().SetInterspersed(false)
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	raw, rawGuess := args[0], args[1]
	printer := printerFor(cmd)

	sess := session.New()
	res, err := sess.Resolve(raw)
	if err != nil {
		if !errors.Is(err, session.ErrEmptyEquation) {
			logWarn(cmd.ErrOrStderr(), env.logger.Append(log.Rejected("cli", sess.ID, raw, err)))
		}
		printer.Failure(err)
		return reported(fmt.Errorf("solving %q: %w", raw, err))
	}
	logWarn(cmd.ErrOrStderr(), env.logger.Append(log.Solved("cli", sess.ID, raw, res)))

	mode := equation.GuessInteger
	if exactFlag || env.cfg.Guess.AllowFractions {
		mode = equation.GuessExact
	}
	guess, err := equation.ParseGuess(rawGuess, mode)
	if err != nil {
		printer.Failure(err)
		return reported(err)
	}

	v, err := sess.Verify(guess)
	if err != nil {
		return err
	}
	logWarn(cmd.ErrOrStderr(), env.logger.Append(log.Checked("cli", sess.ID, v)))

	printer.Result(res)
	var message string
	if v.Correct {
		message = celebrate.NewPicker(env.cfg.Celebration.Messages, nil).Message()
	}
	printer.Verdict(v, message)

	if !v.Correct {
		return reported(errWrongGuess)
	}
	return nil
}
