package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/planboard/internal/storage"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize planboard storage",
		Long: "Create the configuration, data and export directories, write a default\n" +
			"config.yaml when missing and create empty collections.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags) error {
	s, err := resolveSettings(flags)
	if err != nil {
		return sysError("load settings: %w", err)
	}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}
	created, err := writeConfigIfMissing(s.configDir, configFile{
		Backend:  s.config.Backend,
		DataDir:  flags.dataDir,
		OutDir:   flags.outDir,
		LogLevel: s.logLevel.String(),
	})
	if err != nil {
		return sysError("write config: %w", err)
	}

	store, err := storage.Open(s.config)
	if err != nil {
		return sysError("open storage: %w", err)
	}
	defer store.Close()

	if err := storage.Init(store); err != nil {
		return sysError("initialize collections: %w", err)
	}
	if err := os.MkdirAll(s.config.OutDir, 0o755); err != nil {
		return sysError("create out directory: %w", err)
	}

	out := cmd.OutOrStdout()
	if created {
		fmt.Fprintf(out, "wrote %s/%s\n", s.configDir, configFileExt)
	}
	fmt.Fprintf(out, "planboard initialized (backend %s, data %s)\n", s.config.Backend, s.config.DataDir)
	return nil
}
