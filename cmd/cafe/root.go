// Root command for the cafe CLI.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cafe/internal/cafe"
	"github.com/mesh-intelligence/cafe/internal/console"
	"github.com/mesh-intelligence/cafe/internal/logging"
	"github.com/mesh-intelligence/cafe/internal/memory"
	"github.com/mesh-intelligence/cafe/internal/paths"
	"github.com/mesh-intelligence/cafe/internal/sqlite"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// codedError carries the process exit code for an error returned by a
// command.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// sysError marks err as a system failure (exit code 2).
func sysError(err error) error {
	return &codedError{code: exitSysError, err: err}
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	logLevel  string
	cafeName  string
	noSeed    bool
}

// newRootCmd creates the top-level "cafe" command with global flags and all
// subcommands registered. Running it without a subcommand starts a session.
func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "cafe",
		Short: "Interactive menu and customer records console",
		Long: `cafe is an interactive console for a cafe's menu and customer records.
It prompts for commands (add, remove, update, search, quit) and keeps all
data in memory for the length of the session.`,
		Version: version,
		Args:    cobra.NoArgs,
		// main prints errors; do not print usage on errors returned by the session.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, &flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $CAFE_CONFIG_DIR or the platform config dir)")
	root.Flags().StringVar(&flags.backend, "backend", "", "storage backend: memory or sqlite")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&flags.cafeName, "cafe-name", "", "name shown in the welcome banner")
	root.Flags().BoolVar(&flags.noSeed, "no-seed", false, "start with an empty menu and no customers")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(&flags))

	return root
}

// runSession loads configuration, attaches the configured backend, and runs
// one interactive session on the command's input and output.
func runSession(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	s, err := loadSettings(cmd, configDir)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), s.logLevel)
	if err != nil {
		return err
	}

	store, err := newStore(s.store.Backend)
	if err != nil {
		return err
	}
	if err := store.Attach(s.store); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	defer store.Detach()

	logger.Debug("store attached", "backend", s.store.Backend, "seed", s.store.Seed)

	session := console.NewSession(
		cafe.NewManager(store, logger),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		console.WithCafeName(s.cafeName),
		console.WithLogger(logger),
	)
	if err := session.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return sysError(fmt.Errorf("session: %w", err))
	}
	return nil
}

// newStore returns an unattached backend for the given name.
func newStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendMemory:
		return memory.NewBackend(), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	}
	return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
}
