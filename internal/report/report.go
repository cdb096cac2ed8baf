// Package report implements the scan transcript sinks.
//
// Every line of the transcript is handed to a [Reporter] exactly once. [Tee]
// copies it to the console and the log file; [Memory] keeps it for tests.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/muxscan/internal/config"
	"github.com/backmassage/muxscan/internal/term"
)

// Reporter receives transcript lines. A line never contains its trailing
// newline.
type Reporter interface {
	Record(line string) error
}

// Tee writes each record to a console writer and to a log file, flushing the
// file after every record so a partial log survives a crash. Console lines may
// be styled; the file always gets the plain text.
type Tee struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	buf     *bufio.Writer
	path    string
	style   func(string) string
}

// Open creates (or truncates) the log file at path and returns a Tee writing
// to it and to console. Each run starts a fresh log. The caller must Close it.
func Open(path string, console io.Writer, mode config.ColorMode) (*Tee, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Tee{
		console: console,
		file:    f,
		buf:     bufio.NewWriter(f),
		path:    path,
		style:   newHighlighter(term.Renderer(console, mode)),
	}, nil
}

// Path returns the log file location.
func (t *Tee) Path() string { return t.path }

// Record writes line to both sinks.
func (t *Tee) Record(line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file == nil {
		return os.ErrClosed
	}
	if _, err := io.WriteString(t.console, t.style(line)+"\n"); err != nil {
		return fmt.Errorf("write console: %w", err)
	}
	if _, err := t.buf.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	if err := t.buf.Flush(); err != nil {
		return fmt.Errorf("flush log: %w", err)
	}
	return nil
}

// Close flushes and closes the log file. It is safe to call more than once.
func (t *Tee) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file == nil {
		return nil
	}
	flushErr := t.buf.Flush()
	closeErr := t.file.Close()
	t.file = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Memory is an in-memory Reporter.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

// Record appends line.
func (m *Memory) Record(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
	return nil
}

// Lines returns a copy of everything recorded so far.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

// String returns the transcript as it would appear in the log file.
func (m *Memory) String() string {
	lines := m.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

var (
	bannerColor = lipgloss.Color("#D97706") // amber
	dangerColor = lipgloss.Color("#EF4444") // red
)

// newHighlighter styles the transcript's marker lines for the console.
func newHighlighter(r *lipgloss.Renderer) func(string) string {
	banner := r.NewStyle().Foreground(bannerColor)
	danger := r.NewStyle().Bold(true).Foreground(dangerColor)
	return func(line string) string {
		switch {
		case strings.HasPrefix(line, "*** ERROR"), strings.HasPrefix(line, "BAD FILES"):
			return danger.Render(line)
		case strings.HasPrefix(line, "***"):
			return banner.Render(line)
		default:
			return line
		}
	}
}
