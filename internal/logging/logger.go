// Package logging provides the leveled diagnostic logger used for startup
// errors and the check subcommand. The scan transcript itself goes through
// the report package.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/muxscan/internal/config"
	"github.com/backmassage/muxscan/internal/term"
)

var (
	infoColor    = lipgloss.Color("#60A5FA") // blue
	successColor = lipgloss.Color("#22C55E") // green
	warnColor    = lipgloss.Color("#F59E0B") // yellow
	errorColor   = lipgloss.Color("#EF4444") // red
	debugColor   = lipgloss.Color("#22D3EE") // cyan
)

// Logger provides leveled, optionally colored logging. ERROR lines go to the
// error writer; everything else goes to the output writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	err     io.Writer
	verbose bool
	now     func() time.Time

	info, success, warn, fail, debug lipgloss.Style
}

// NewLogger builds a Logger writing to out and errOut, colored according to
// cfg.ColorMode as resolved against out.
func NewLogger(cfg *config.Config, out, errOut io.Writer) *Logger {
	r := term.Renderer(out, cfg.ColorMode)
	tag := func(c lipgloss.Color) lipgloss.Style { return r.NewStyle().Bold(true).Foreground(c) }
	return &Logger{
		out:     out,
		err:     errOut,
		verbose: cfg.Verbose,
		now:     time.Now,
		info:    tag(infoColor),
		success: tag(successColor),
		warn:    tag(warnColor),
		fail:    tag(errorColor),
		debug:   tag(debugColor),
	}
}

func (l *Logger) line(level string, style lipgloss.Style, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	w := l.out
	if level == "ERROR" {
		w = l.err
	}
	_, _ = io.WriteString(w, ts+" "+style.Render("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", l.info, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", l.success, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", l.warn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", l.fail, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", l.debug, fmt.Sprintf(format, args...))
}
