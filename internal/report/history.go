package report

import (
	"fmt"
	"io"

	"github.com/Tiliavir/pomo/internal/model"
	"github.com/Tiliavir/pomo/internal/timecalc"
)

func icon(k model.Kind) string {
	if k == model.KindWork {
		return "📚"
	}
	return "☕"
}

// History prints every record grouped by day, most recent day first.
func History(w io.Writer, records []model.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo sessions yet! Start your first timer.")
		return
	}

	fmt.Fprintln(w, "\n"+rule("="))
	fmt.Fprintln(w, titleStyle.Render("         STUDY SESSION HISTORY"))
	fmt.Fprintln(w, rule("="))

	for _, g := range GroupByDate(records) {
		fmt.Fprintf(w, "\n📅 %s\n", dateStyle.Render(g.Date))
		fmt.Fprintln(w, rule("-"))
		for _, r := range g.Records {
			fmt.Fprintf(w, "  %s %s - %s (%d min)\n",
				icon(r.Type), timecalc.TimeOfDay(r.CompletedAt), r.Subject, r.Duration)
		}
		fmt.Fprintf(w, "\n  Total study time: %d minutes\n", g.WorkMinutes)
	}
}
