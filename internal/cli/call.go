package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/planboard/internal/api"
	"github.com/mesh-intelligence/planboard/internal/export"
	"github.com/mesh-intelligence/planboard/internal/logging"
	"github.com/mesh-intelligence/planboard/internal/storage"
)

func newCallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "call <operation> [request]",
		Short: "Run one operation and print its response document",
		Long: "Run one operation with a JSON request and print the JSON response.\n" +
			"The request is read from stdin when omitted or given as \"-\".\n" +
			"Failures are reported in the response document, not the exit code.",
		Example: `  planboard call create_user '{"name":"alice","display_name":"Alice","creation_time":"2026-01-01T00:00:00"}'
  echo '{"id":"team_1"}' | planboard call list_boards`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, flags, args)
		},
	}
}

func runCall(cmd *cobra.Command, flags *rootFlags, args []string) error {
	op := args[0]
	request := ""
	if len(args) == 2 {
		request = args[1]
	} else if api.TakesRequest(op) {
		request = "-"
	}
	if request == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return sysError("read request: %w", err)
		}
		request = string(data)
	}

	s, err := resolveSettings(flags)
	if err != nil {
		return sysError("load settings: %w", err)
	}
	logger := logging.Setup(cmd.ErrOrStderr(), s.logLevel)

	store, err := storage.Open(s.config)
	if err != nil {
		return sysError("open storage: %w", err)
	}
	defer store.Close()

	svc := api.New(store, export.TextExporter{OutDir: s.config.OutDir}, logger)
	fmt.Fprintln(cmd.OutOrStdout(), svc.Call(op, strings.TrimSpace(request)))
	return nil
}
