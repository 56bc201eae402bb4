package report

import (
	"fmt"
	"io"

	"github.com/Tiliavir/pomo/internal/model"
	"github.com/Tiliavir/pomo/internal/timecalc"
)

// Statistics prints totals over the whole log and the time spent per subject.
func Statistics(w io.Writer, records []model.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "\nNo data yet! Complete some study sessions first.")
		return
	}

	s := Summarize(records)

	fmt.Fprintln(w, "\n"+rule("="))
	fmt.Fprintln(w, titleStyle.Render("             STUDY STATISTICS"))
	fmt.Fprintln(w, rule("="))

	fmt.Fprintf(w, "\n📊 Total work sessions: %d\n", s.WorkSessions)
	fmt.Fprintf(w, "⏱️  Total work time: %d minutes (%s)\n", s.WorkMinutes, timecalc.FormatMinutes(s.WorkMinutes))
	fmt.Fprintf(w, "☕ Total break time: %d minutes\n", s.BreakMinutes)

	if len(s.Subjects) == 0 {
		return
	}
	fmt.Fprintln(w, "\n📚 Time by subject:")
	for _, st := range s.Subjects {
		fmt.Fprintf(w, "   %-20s %d minutes\n", st.Subject+":", st.Minutes)
	}
}
