package dispatch

import "strings"

// Command is one parsed invocation: Install, Remove, Start or Stop.
type Command interface {
	// Target is the service name exactly as the user typed it.
	Target() string
	verb() string
}

// Install registers Executable as the service named Service.
type Install struct {
	Service    string
	Executable string
	// Args is the raw argument line, split by SplitArgs at dispatch time.
	Args string
}

// Remove unregisters a service.
type Remove struct {
	Service string
}

// Start starts an installed service.
type Start struct {
	Service string
}

// Stop stops a running service.
type Stop struct {
	Service string
}

func (c Install) Target() string { return c.Service }
func (c Remove) Target() string  { return c.Service }
func (c Start) Target() string   { return c.Service }
func (c Stop) Target() string    { return c.Service }

func (Install) verb() string { return "install" }
func (Remove) verb() string  { return "remove" }
func (Start) verb() string   { return "start" }
func (Stop) verb() string    { return "stop" }

// SplitArgs splits line on every single space. Quoting is not understood
// and consecutive spaces yield empty tokens, so "" becomes [""].
func SplitArgs(line string) []string {
	return strings.Split(line, " ")
}
