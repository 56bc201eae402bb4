// Package timer runs a single work or break countdown.
package timer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/pomo/internal/logger"
	"github.com/Tiliavir/pomo/internal/model"
	"github.com/Tiliavir/pomo/internal/timecalc"
)

// State is the lifecycle state of a countdown.
type State int

const (
	Running State = iota
	Completed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Clock produces the once-per-tick signal that drives a countdown.
type Clock interface {
	Ticker(d time.Duration) (ticks <-chan time.Time, stop func())
}

// SystemClock ticks in real time.
type SystemClock struct{}

// Ticker wraps time.NewTicker.
func (SystemClock) Ticker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

// Runner executes countdowns, writing progress to Out.
type Runner struct {
	Out   io.Writer
	Clock Clock
	Bell  bool
}

// New returns a Runner on the system clock.
func New(out io.Writer, bell bool) *Runner {
	return &Runner{Out: out, Clock: SystemClock{}, Bell: bell}
}

// countdown is the Running -> Completed | Cancelled state machine.
type countdown struct {
	state     State
	remaining int
}

func (c *countdown) tick() {
	if c.state != Running {
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.state = Completed
	}
}

func (c *countdown) cancel() {
	if c.state == Running {
		c.state = Cancelled
	}
}

// Run counts down minutes*60 seconds, one tick per second, and returns
// Completed or Cancelled. Cancelling ctx stops the countdown at the next check.
func (r *Runner) Run(ctx context.Context, minutes int, kind model.Kind) (State, error) {
	if minutes <= 0 {
		return Running, fmt.Errorf("interval length must be positive, got %d", minutes)
	}
	if !kind.Valid() {
		return Running, fmt.Errorf("unknown interval type %q", kind)
	}

	label := strings.ToUpper(string(kind))
	fmt.Fprintf(r.Out, "\n%s session started: %d minutes\n", label, minutes)
	fmt.Fprintln(r.Out, "Press Ctrl+C to cancel")
	logger.Debug("interval started", "type", kind, "minutes", minutes)

	ticks, stop := r.Clock.Ticker(time.Second)
	defer stop()

	cd := &countdown{state: Running, remaining: minutes * 60}
	for cd.state == Running {
		fmt.Fprintf(r.Out, "\rTime remaining: %s", timecalc.FormatClock(cd.remaining))
		if ctx.Err() != nil {
			cd.cancel()
			break
		}
		select {
		case <-ctx.Done():
			cd.cancel()
		case <-ticks:
			cd.tick()
		}
	}

	if cd.state == Cancelled {
		fmt.Fprintln(r.Out, "\n\nTimer cancelled by user.")
		logger.Info("interval cancelled", "type", kind, "remaining_seconds", cd.remaining)
		return Cancelled, nil
	}

	fmt.Fprintf(r.Out, "\rTime remaining: %s\n", timecalc.FormatClock(0))
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(r.Out, rule)
	fmt.Fprintln(r.Out, bannerStyle.Render(fmt.Sprintf("🎉 %s SESSION COMPLETE! 🎉", label)))
	fmt.Fprintln(r.Out, rule)
	if r.Bell {
		fmt.Fprint(r.Out, "\a")
	}
	logger.Debug("interval completed", "type", kind, "minutes", minutes)
	return Completed, nil
}
