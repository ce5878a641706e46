package dispatch

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/open-agents/svcctl/internal/service"
)

// Dispatcher performs exactly one request against a service manager per
// Dispatch call. Progress lines go to out; the audit trail goes to logger.
type Dispatcher struct {
	mgr    service.Manager
	out    io.Writer
	logger *log.Logger
}

// New creates a Dispatcher. A nil logger discards the audit trail.
func New(mgr service.Manager, out io.Writer, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Dispatcher{mgr: mgr, out: out, logger: logger}
}

// Dispatch runs cmd. It never retries: the first failure is returned.
func (d *Dispatcher) Dispatch(cmd Command) error {
	id := uuid.NewString()

	switch c := cmd.(type) {
	case Install:
		fmt.Fprintf(d.out, "Installing service: %s\n", c.Service)
		fmt.Fprintf(d.out, "Executable: %s\n", c.Executable)

		label, err := service.ParseLabel(c.Service)
		if err != nil {
			return err
		}
		args := SplitArgs(c.Args)
		d.logger.Printf("[%s] install %s program=%s args=%q", id, label, c.Executable, args)
		err = d.mgr.Install(service.InstallRequest{
			Label:   label,
			Program: c.Executable,
			Args:    args,
		})
		return d.result(id, cmd, ErrInstallFailed, err)

	case Remove:
		fmt.Fprintf(d.out, "Removing service: %s\n", c.Service)

		label, err := service.ParseLabel(c.Service)
		if err != nil {
			return err
		}
		d.logger.Printf("[%s] uninstall %s", id, label)
		err = d.mgr.Uninstall(service.UninstallRequest{Label: label})
		return d.result(id, cmd, ErrRemoveFailed, err)

	case Start:
		fmt.Fprintf(d.out, "Starting service: %s\n", c.Service)

		label, err := service.ParseLabel(c.Service)
		if err != nil {
			return err
		}
		d.logger.Printf("[%s] start %s", id, label)
		err = d.mgr.Start(service.StartRequest{Label: label})
		return d.result(id, cmd, ErrStartFailed, err)

	case Stop:
		fmt.Fprintf(d.out, "Stopping service: %s\n", c.Service)

		label, err := service.ParseLabel(c.Service)
		if err != nil {
			return err
		}
		d.logger.Printf("[%s] stop %s", id, label)
		err = d.mgr.Stop(service.StopRequest{Label: label})
		return d.result(id, cmd, ErrStopFailed, err)
	}

	return fmt.Errorf("unsupported command %T", cmd)
}

func (d *Dispatcher) result(id string, cmd Command, kind, err error) error {
	if err != nil {
		d.logger.Printf("[%s] %s %s failed: %v", id, cmd.verb(), cmd.Target(), err)
		return &OpError{Kind: kind, Service: cmd.Target(), Err: err}
	}
	d.logger.Printf("[%s] %s %s ok", id, cmd.verb(), cmd.Target())
	return nil
}
