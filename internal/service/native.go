package service

import (
	"fmt"

	kardianos "github.com/kardianos/service"
)

// NativeManager drives the host's init system or service control manager
// through github.com/kardianos/service.
type NativeManager struct {
	system kardianos.System
	level  Level
}

// New returns a platform-specific service manager
func New(level Level) (*NativeManager, error) {
	return NewWithSystem(kardianos.ChosenSystem(), level)
}

// NewWithSystem binds a manager to an already detected system.
func NewWithSystem(sys kardianos.System, level Level) (*NativeManager, error) {
	if sys == nil {
		return nil, ErrPlatformUnsupported
	}
	return &NativeManager{system: sys, level: level}, nil
}

// Platform names the detected service system, e.g. "linux-systemd".
func (m *NativeManager) Platform() string {
	return m.system.String()
}

func (m *NativeManager) Level() Level {
	return m.level
}

func (m *NativeManager) Install(req InstallRequest) error {
	cfg := m.config(req.Label)
	cfg.Executable = req.Program
	cfg.Arguments = req.Args

	s, err := m.system.New(program{}, cfg)
	if err != nil {
		return err
	}
	return s.Install()
}

func (m *NativeManager) Uninstall(req UninstallRequest) error {
	s, err := m.system.New(program{}, m.config(req.Label))
	if err != nil {
		return err
	}
	return s.Uninstall()
}

func (m *NativeManager) Start(req StartRequest) error {
	s, err := m.system.New(program{}, m.config(req.Label))
	if err != nil {
		return err
	}
	return s.Start()
}

func (m *NativeManager) Stop(req StopRequest) error {
	s, err := m.system.New(program{}, m.config(req.Label))
	if err != nil {
		return err
	}
	return s.Stop()
}

func (m *NativeManager) config(label Label) *kardianos.Config {
	cfg := &kardianos.Config{
		Name:        label.String(),
		DisplayName: label.String(),
		Description: fmt.Sprintf("%s (managed by svcctl)", label.String()),
		Option:      kardianos.KeyValue{},
	}
	if m.level == LevelUser {
		cfg.Option["UserService"] = true
	}
	return cfg
}

// program satisfies kardianos.Interface. svcctl only controls services; it
// never runs as one, so Start and Stop are never called by the manager.
type program struct{}

func (program) Start(kardianos.Service) error { return nil }
func (program) Stop(kardianos.Service) error  { return nil }
