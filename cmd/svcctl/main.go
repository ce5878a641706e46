package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/open-agents/svcctl/internal/config"
	"github.com/open-agents/svcctl/internal/dispatch"
	"github.com/open-agents/svcctl/internal/logger"
	"github.com/open-agents/svcctl/internal/privcheck"
	"github.com/open-agents/svcctl/internal/service"
	"github.com/spf13/cobra"
)

var version = "dev"

// UsageError reports missing or malformed command-line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

type app struct {
	opts   config.Options
	out    io.Writer
	errOut io.Writer
	logger *log.Logger
	file   *logger.Logger

	resolve  func(level service.Level) (service.Manager, error)
	elevated func() (bool, error)
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		out:      out,
		errOut:   errOut,
		logger:   log.New(io.Discard, "", 0),
		elevated: privcheck.Check,
	}
	a.resolve = a.resolveNative
	return a
}

func (a *app) resolveNative(level service.Level) (service.Manager, error) {
	m, err := service.New(level)
	if err != nil {
		return nil, err
	}
	a.logger.Printf("using %s service manager (%s level)", m.Platform(), m.Level())
	return m, nil
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "svcctl",
		Short: "Install, remove, start and stop native OS services",
		Long: `svcctl registers and controls background services through the host's
native service manager (systemd, launchd, the Windows service control
manager and others). Each invocation performs exactly one operation.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("a command is required: install, remove, start or stop")
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.opts.User, "user", false, "Operate on per-user services instead of system services")
	pf.StringVar(&a.opts.LogDir, "log-dir", "", fmt.Sprintf("Append an audit log under this directory (e.g. %s)", config.DefaultLogDir()))
	pf.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Write the audit log to stderr")

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(a.installCmd())
	root.AddCommand(a.removeCmd())
	root.AddCommand(a.startCmd())
	root.AddCommand(a.stopCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.opts.Validate(); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	return nil
}

// openAuditLog wires the audit logger. It creates files, so it must not run
// until every argument has been validated.
func (a *app) openAuditLog() error {
	var w io.Writer
	if a.opts.Verbose {
		w = a.errOut
	}
	if a.opts.LogDir != "" {
		l, err := logger.New(a.opts.LogDir)
		if err != nil {
			return fmt.Errorf("failed to open audit log: %w", err)
		}
		a.file = l
		w = l.Writer(w)
	}
	if w != nil {
		a.logger = log.New(w, "svcctl ", log.LstdFlags)
	}
	return nil
}

// dispatch resolves the native manager and runs cmd against it. It is only
// reached after argument validation has succeeded.
func (a *app) dispatch(cmd *cobra.Command, c dispatch.Command) error {
	cmd.SilenceUsage = true

	if err := a.openAuditLog(); err != nil {
		return err
	}

	level := a.opts.Level()
	mgr, err := a.resolve(level)
	if err != nil {
		return err
	}

	if level == service.LevelSystem {
		ok, err := a.elevated()
		if err != nil {
			a.logger.Printf("privilege check failed: %v", err)
		} else if !ok {
			fmt.Fprintln(a.errOut, "Warning: not running with administrator privileges; the service manager may refuse this operation.")
		}
	}

	return dispatch.New(mgr, a.out, a.logger).Dispatch(c)
}

func (a *app) close() {
	if a.file != nil {
		a.file.Close()
	}
}

func requireValue(name, value string) error {
	if value == "" {
		return usageErrorf("--%s must not be empty", name)
	}
	return nil
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var uerr *UsageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
