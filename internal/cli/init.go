// init.go implements the "eqtutor init" command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eqtutor/eqtutor/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .eqtutor/config.yaml",
	Long: `Create the .eqtutor/ directory with a default configuration file.
Edit it to change the celebration messages, allow fractional guesses or
configure the HTTP server.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(dirFlag)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	path := filepath.Join(config.Dir(dir), "config.yaml")
	if _, statErr := os.Stat(path); statErr == nil && !forceFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s already exists. Use --force to overwrite it.\n", path)
		return nil
	}

	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Created %s\n", path)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  eqtutor             open the interactive solver")
	fmt.Fprintln(w, "  eqtutor examples    list equations to try")
	fmt.Fprintln(w, "  eqtutor serve       start the HTTP API")
	return nil
}
