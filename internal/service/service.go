package service

import "errors"

// ErrPlatformUnsupported is returned when no native service system is
// detected on the host.
var ErrPlatformUnsupported = errors.New("no supported service management platform detected")

// Level selects the service domain an operation targets.
type Level int

const (
	LevelSystem Level = iota
	LevelUser
)

func (l Level) String() string {
	if l == LevelUser {
		return "user"
	}
	return "system"
}

// InstallRequest describes a service to register with the native manager.
type InstallRequest struct {
	Label   Label
	Program string
	Args    []string
}

type UninstallRequest struct {
	Label Label
}

type StartRequest struct {
	Label Label
}

type StopRequest struct {
	Label Label
}

// Manager provides cross-platform service management
type Manager interface {
	Install(req InstallRequest) error
	Uninstall(req UninstallRequest) error
	Start(req StartRequest) error
	Stop(req StopRequest) error
}
