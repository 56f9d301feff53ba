// Package status reports the progress and outcome of CLI operations.
package status

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a reported event.
type Kind string

const (
	KindStatus  Kind = "status"
	KindSuccess Kind = "success"
	KindWarn    Kind = "warn"
	KindError   Kind = "error"
)

// Event is a single report.
type Event struct {
	Kind    Kind
	Message string
}

var (
	progressStyle = lipgloss.NewStyle().Faint(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Console writes styled outcome lines to w and mirrors every event to the logger.
type Console struct {
	w        io.Writer
	logger   *slog.Logger
	progress bool
}

// NewConsole creates a console reporter. When progress is true, status
// updates are printed as well as logged.
func NewConsole(w io.Writer, logger *slog.Logger, progress bool) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{w: w, logger: logger, progress: progress}
}

// Status records an intermediate step.
func (c *Console) Status(msg string) {
	c.logger.Debug(msg)
	if c.progress {
		fmt.Fprintln(c.w, progressStyle.Render("… "+msg))
	}
}

// Success reports a successful outcome.
func (c *Console) Success(msg string) {
	c.logger.Info(msg, slog.String("outcome", string(KindSuccess)))
	fmt.Fprintln(c.w, successStyle.Render("✔ "+msg))
}

// Warn reports an expected, non-fatal outcome.
func (c *Console) Warn(msg string) {
	c.logger.Warn(msg, slog.String("outcome", string(KindWarn)))
	fmt.Fprintln(c.w, warnStyle.Render("⚠ "+msg))
}

// Error reports a failed outcome.
func (c *Console) Error(msg string) {
	c.logger.Error(msg, slog.String("outcome", string(KindError)))
	fmt.Fprintln(c.w, errorStyle.Render("✖ "+msg))
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) add(k Kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: k, Message: msg})
}

// Status records an intermediate step.
func (r *Recorder) Status(msg string) { r.add(KindStatus, msg) }

// Success records a successful outcome.
func (r *Recorder) Success(msg string) { r.add(KindSuccess, msg) }

// Warn records an expected, non-fatal outcome.
func (r *Recorder) Warn(msg string) { r.add(KindWarn, msg) }

// Error records a failed outcome.
func (r *Recorder) Error(msg string) { r.add(KindError, msg) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Terminal returns the non-status events.
func (r *Recorder) Terminal() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind != KindStatus {
			out = append(out, e)
		}
	}
	return out
}
