package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	MaxSize    = 10 * 1024 * 1024 // 10MB
	MaxBackups = 7
)

// Logger is a rotating file logger
type Logger struct {
	dir  string
	file *os.File
	size int64
	seq  int
	mu   sync.Mutex
}

// New creates a rotating logger writing under dir
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	l := &Logger{dir: dir}
	l.seq = l.lastSeq(time.Now().Format("2006-01-02"))
	if err := l.openFile(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Logger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.size > 0 && l.size+int64(len(p)) > MaxSize {
		if err := l.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = l.file.Write(p)
	l.size += int64(n)
	return
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Path returns the file currently being written.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Name()
}

func (l *Logger) openFile() error {
	name := fmt.Sprintf("svcctl-%s.log", time.Now().Format("2006-01-02"))
	if l.seq > 0 {
		name = fmt.Sprintf("svcctl-%s.%d.log", time.Now().Format("2006-01-02"), l.seq)
	}
	path := filepath.Join(l.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	l.file = f
	l.size = info.Size()
	return nil
}

// lastSeq returns the highest rotation number already used for date, so a
// new process keeps appending to the newest file instead of the first one.
func (l *Logger) lastSeq(date string) int {
	entries, _ := os.ReadDir(l.dir)
	prefix := "svcctl-" + date + "."
	last := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".log"))
		if err == nil && n > last {
			last = n
		}
	}
	return last
}

func (l *Logger) rotate() error {
	l.file.Close()
	l.seq++
	l.cleanup()
	return l.openFile()
}

func (l *Logger) cleanup() {
	entries, _ := os.ReadDir(l.dir)
	type logFile struct {
		path    string
		modTime time.Time
	}
	var logs []logFile
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "svcctl-") || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFile{path: filepath.Join(l.dir, e.Name()), modTime: info.ModTime()})
	}

	if len(logs) <= MaxBackups {
		return
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].modTime.Before(logs[j].modTime)
	})

	for i := 0; i < len(logs)-MaxBackups; i++ {
		os.Remove(logs[i].path)
	}
}

// Writer returns an io.Writer for use with log.New, teeing to extra
// when it is non-nil.
func (l *Logger) Writer(extra io.Writer) io.Writer {
	if extra == nil {
		return l
	}
	return io.MultiWriter(l, extra)
}
