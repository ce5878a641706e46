package dispatch

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/open-agents/svcctl/internal/service"
)

type recorder struct {
	install   []service.InstallRequest
	uninstall []service.UninstallRequest
	start     []service.StartRequest
	stop      []service.StopRequest
	err       error
}

func (r *recorder) Install(req service.InstallRequest) error {
	r.install = append(r.install, req)
	return r.err
}

func (r *recorder) Uninstall(req service.UninstallRequest) error {
	r.uninstall = append(r.uninstall, req)
	return r.err
}

func (r *recorder) Start(req service.StartRequest) error {
	r.start = append(r.start, req)
	return r.err
}

func (r *recorder) Stop(req service.StopRequest) error {
	r.stop = append(r.stop, req)
	return r.err
}

func (r *recorder) total() int {
	return len(r.install) + len(r.uninstall) + len(r.start) + len(r.stop)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"-a -b", []string{"-a", "-b"}},
		{"--flag value", []string{"--flag", "value"}},
		{"", []string{""}},
		{"single", []string{"single"}},
		{"a  b", []string{"a", "", "b"}},
		{" lead", []string{"", "lead"}},
		{`"quoted arg"`, []string{`"quoted`, `arg"`}},
		{"tab\tkept", []string{"tab\tkept"}},
	}

	for _, tt := range tests {
		if got := SplitArgs(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitArgs(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestDispatchInstall(t *testing.T) {
	r := &recorder{}
	var out bytes.Buffer
	d := New(r, &out, nil)

	err := d.Dispatch(Install{Service: "demo", Executable: "/usr/bin/demo", Args: "--flag value"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(r.install) != 1 || r.total() != 1 {
		t.Fatalf("got %d install calls, %d total", len(r.install), r.total())
	}
	req := r.install[0]
	if req.Label.String() != "demo" || req.Program != "/usr/bin/demo" {
		t.Errorf("request = %+v", req)
	}
	if !reflect.DeepEqual(req.Args, []string{"--flag", "value"}) {
		t.Errorf("Args = %q", req.Args)
	}
	if out.String() != "Installing service: demo\nExecutable: /usr/bin/demo\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestDispatchControl(t *testing.T) {
	tests := []struct {
		cmd    Command
		output string
		count  func(*recorder) int
		label  func(*recorder) string
	}{
		{Remove{Service: "demo"}, "Removing service: demo\n",
			func(r *recorder) int { return len(r.uninstall) },
			func(r *recorder) string { return r.uninstall[0].Label.String() }},
		{Start{Service: "demo"}, "Starting service: demo\n",
			func(r *recorder) int { return len(r.start) },
			func(r *recorder) string { return r.start[0].Label.String() }},
		{Stop{Service: "demo"}, "Stopping service: demo\n",
			func(r *recorder) int { return len(r.stop) },
			func(r *recorder) string { return r.stop[0].Label.String() }},
	}

	for _, tt := range tests {
		r := &recorder{}
		var out bytes.Buffer
		if err := New(r, &out, nil).Dispatch(tt.cmd); err != nil {
			t.Fatalf("%T: Dispatch failed: %v", tt.cmd, err)
		}
		if tt.count(r) != 1 || r.total() != 1 {
			t.Fatalf("%T: expected exactly one matching call", tt.cmd)
		}
		if tt.label(r) != "demo" {
			t.Errorf("%T: label = %q", tt.cmd, tt.label(r))
		}
		if out.String() != tt.output {
			t.Errorf("%T: output = %q, want %q", tt.cmd, out.String(), tt.output)
		}
	}
}

func TestDispatchFailure(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		cmd  Command
		kind error
	}{
		{Install{Service: "demo", Executable: "/bin/demo"}, ErrInstallFailed},
		{Remove{Service: "demo"}, ErrRemoveFailed},
		{Start{Service: "demo"}, ErrStartFailed},
		{Stop{Service: "demo"}, ErrStopFailed},
	}

	for _, tt := range tests {
		r := &recorder{err: cause}
		err := New(r, &bytes.Buffer{}, nil).Dispatch(tt.cmd)

		var operr *OpError
		if !errors.As(err, &operr) {
			t.Fatalf("%T: got %v, want OpError", tt.cmd, err)
		}
		if operr.Service != "demo" {
			t.Errorf("%T: Service = %q", tt.cmd, operr.Service)
		}
		if !errors.Is(err, tt.kind) || !errors.Is(err, cause) {
			t.Errorf("%T: %v does not match %v and %v", tt.cmd, err, tt.kind, cause)
		}
		if r.total() != 1 {
			t.Errorf("%T: got %d calls, want 1", tt.cmd, r.total())
		}
	}
}

func TestDispatchInvalidLabel(t *testing.T) {
	r := &recorder{}
	err := New(r, &bytes.Buffer{}, nil).Dispatch(Start{Service: ""})

	var lerr *service.LabelError
	if !errors.As(err, &lerr) {
		t.Fatalf("got %v, want LabelError", err)
	}
	if r.total() != 0 {
		t.Errorf("manager called for invalid label")
	}
}

func TestDispatchAuditLog(t *testing.T) {
	var buf bytes.Buffer
	r := &recorder{err: errors.New("denied")}
	d := New(r, &bytes.Buffer{}, log.New(&buf, "", 0))

	_ = d.Dispatch(Stop{Service: "demo"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "stop demo") {
		t.Errorf("request line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "stop demo failed: denied") {
		t.Errorf("result line = %q", lines[1])
	}
	id := lines[0][:strings.Index(lines[0], "]")+1]
	if !strings.HasPrefix(lines[1], id) {
		t.Errorf("request ID %s not repeated in %q", id, lines[1])
	}
}
