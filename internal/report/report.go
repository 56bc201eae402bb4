// Package report renders the session history and aggregate statistics.
package report

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/pomo/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

const ruleWidth = 50

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

// DayGroup is the set of records completed on one calendar date.
type DayGroup struct {
	Date        string
	Records     []model.Record
	WorkMinutes int
}

// GroupByDate groups records by date, most recent date first. Records keep
// their log order within a group.
func GroupByDate(records []model.Record) []DayGroup {
	index := map[string]int{}
	var groups []DayGroup
	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			i = len(groups)
			index[r.Date] = i
			groups = append(groups, DayGroup{Date: r.Date})
		}
		groups[i].Records = append(groups[i].Records, r)
		if r.IsWork() {
			groups[i].WorkMinutes += r.Duration
		}
	}
	// YYYY-MM-DD sorts lexically in date order.
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Date > groups[b].Date
	})
	return groups
}

// SubjectTotal is the work time spent on one subject.
type SubjectTotal struct {
	Subject string
	Minutes int
}

// Stats aggregates the whole log.
type Stats struct {
	WorkSessions  int
	WorkMinutes   int
	BreakSessions int
	BreakMinutes  int
	// Subjects is ordered by Minutes descending; ties keep first-seen order.
	Subjects []SubjectTotal
}

// Summarize computes totals and per-subject work minutes.
func Summarize(records []model.Record) Stats {
	var s Stats
	index := map[string]int{}
	for _, r := range records {
		if !r.IsWork() {
			s.BreakSessions++
			s.BreakMinutes += r.Duration
			continue
		}
		s.WorkSessions++
		s.WorkMinutes += r.Duration

		i, ok := index[r.Subject]
		if !ok {
			i = len(s.Subjects)
			index[r.Subject] = i
			s.Subjects = append(s.Subjects, SubjectTotal{Subject: r.Subject})
		}
		s.Subjects[i].Minutes += r.Duration
	}
	sort.SliceStable(s.Subjects, func(a, b int) bool {
		return s.Subjects[a].Minutes > s.Subjects[b].Minutes
	})
	return s
}
