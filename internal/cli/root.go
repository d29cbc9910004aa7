// Package cli implements the planboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values shared by all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	outDir    string
	backend   string
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// sysError marks err as a setup failure (exit code 2).
func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "planboard" command with its global flags
// and subcommands.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "planboard",
		Short: "Local project-management store for users, teams and boards",
		Long: "Planboard keeps users, teams, boards and tasks in local storage and\n" +
			"answers JSON requests, one operation per call.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .planboard)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .planboard-db)")
	pf.StringVar(&flags.outDir, "out-dir", "", "export directory (default: <data-dir>/out)")
	pf.StringVar(&flags.backend, "backend", "", "storage backend: json or sqlite")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newOpsCmd())
	root.AddCommand(newCallCmd(flags))

	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	os.Exit(run(NewRootCmd()))
}

// run executes root and maps its error to an exit code.
func run(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
