// Package menu drives the interactive study timer loop.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/pomo/internal/logger"
	"github.com/Tiliavir/pomo/internal/model"
	"github.com/Tiliavir/pomo/internal/report"
	"github.com/Tiliavir/pomo/internal/sessionlog"
	"github.com/Tiliavir/pomo/internal/timer"
)

// IntervalRunner runs one countdown.
type IntervalRunner interface {
	Run(ctx context.Context, minutes int, kind model.Kind) (timer.State, error)
}

// Interrupts scopes user interrupts to a single countdown: the returned
// context is cancelled when the user interrupts while it is armed.
type Interrupts interface {
	Arm(ctx context.Context) (context.Context, context.CancelFunc)
}

type noInterrupts struct{}

func (noInterrupts) Arm(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// Controller reads menu choices from in and dispatches them.
type Controller struct {
	in         *bufio.Scanner
	out        io.Writer
	log        *sessionlog.Log
	runner     IntervalRunner
	interrupts Interrupts
}

// New returns a Controller. A nil interrupts means countdowns can only be
// stopped through the context passed to Run.
func New(in io.Reader, out io.Writer, log *sessionlog.Log, runner IntervalRunner, interrupts Interrupts) *Controller {
	if interrupts == nil {
		interrupts = noInterrupts{}
	}
	return &Controller{
		in:         bufio.NewScanner(in),
		out:        out,
		log:        log,
		runner:     runner,
		interrupts: interrupts,
	}
}

// Run loops until the user picks exit or input ends.
func (c *Controller) Run(ctx context.Context) error {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, headerStyle.Render("     POMODORO STUDY TIMER"))
	fmt.Fprintln(c.out, rule)

	for {
		c.printMenu()
		choice, ok := c.prompt("\nChoose option (1-5): ")
		if !ok {
			c.goodbye()
			return c.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.startWork(ctx)
		case "2":
			c.runInterval(ctx, model.BreakSubject, model.BreakMinutes, model.KindBreak)
		case "3":
			report.History(c.out, c.log.Records())
		case "4":
			report.Statistics(c.out, c.log.Records())
		case "5":
			c.goodbye()
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice! Please enter 1-5.")
		}
	}
}

func (c *Controller) printMenu() {
	fmt.Fprintln(c.out, "\n--- MENU ---")
	fmt.Fprintf(c.out, "1. Start work session (%d min)\n", model.WorkMinutes)
	fmt.Fprintf(c.out, "2. Start break (%d min)\n", model.BreakMinutes)
	fmt.Fprintln(c.out, "3. View session history")
	fmt.Fprintln(c.out, "4. View statistics")
	fmt.Fprintln(c.out, "5. Exit")
}

// prompt prints label and reads one line. ok is false at end of input.
func (c *Controller) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Controller) goodbye() {
	fmt.Fprintln(c.out, "\n✓ Sessions saved! Keep studying! 📚")
}

func (c *Controller) startWork(ctx context.Context) {
	subject, _ := c.prompt("What are you studying? ")
	subject = strings.TrimSpace(subject)
	if subject == "" {
		fmt.Fprintln(c.out, "Subject cannot be empty!")
		return
	}

	if !c.runInterval(ctx, subject, model.WorkMinutes, model.KindWork) {
		return
	}

	answer, _ := c.prompt(fmt.Sprintf("\nTake a %d-minute break? (y/n): ", model.BreakMinutes))
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		c.runInterval(ctx, model.BreakSubject, model.BreakMinutes, model.KindBreak)
	}
}

// runInterval runs one countdown and records it if it completed. It reports
// whether the countdown completed, even when saving the record failed.
func (c *Controller) runInterval(ctx context.Context, subject string, minutes int, kind model.Kind) bool {
	armed, disarm := c.interrupts.Arm(ctx)
	state, err := c.runner.Run(armed, minutes, kind)
	disarm()
	if err != nil {
		logger.Error("interval failed", "type", kind, "error", err)
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return false
	}
	if state != timer.Completed {
		return false
	}

	rec, err := c.log.Record(subject, minutes, kind)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return true
	}
	fmt.Fprintf(c.out, "✓ Session saved: %s - %d min\n", rec.Subject, rec.Duration)
	return true
}
