package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"calendar-copilot/internal/model"
)

// PlaceholderNoItems is emitted verbatim when there is nothing to format.
const PlaceholderNoItems = "No events/reminders in the selected time range."

const (
	dayHeaderLayout = "Monday, January 2, 2006"
	timeOfDayLayout = "15:04"
	dueDateLayout   = "2006-01-02"
	dueTimeLayout   = "2006-01-02 15:04"
)

// FormatAgenda renders events and reminders as human-readable text blocks,
// one block per local calendar day, days ascending. Within a day, events come
// first ordered by start time, then reminders ordered by due time. A reminder
// without a due timestamp is filed under now. Pure function of its inputs.
func FormatAgenda(events []model.Event, reminders []model.Reminder, loc *time.Location, now time.Time) string {
	if len(events) == 0 && len(reminders) == 0 {
		return PlaceholderNoItems
	}
	if loc == nil {
		loc = time.Local
	}

	type daySection struct {
		events    []model.Event
		reminders []model.Reminder
	}

	days := make(map[string]*daySection)
	keys := make([]string, 0)

	section := func(t time.Time) *daySection {
		key := t.In(loc).Format(dueDateLayout)
		s, ok := days[key]
		if !ok {
			s = &daySection{}
			days[key] = s
			keys = append(keys, key)
		}
		return s
	}

	for _, ev := range events {
		s := section(ev.StartAt)
		s.events = append(s.events, ev)
	}
	for _, rem := range reminders {
		due := now
		if rem.DueAt != nil {
			due = *rem.DueAt
		}
		s := section(due)
		s.reminders = append(s.reminders, rem)
	}

	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString("\n")
		}

		day, _ := time.ParseInLocation(dueDateLayout, key, loc)
		fmt.Fprintf(&b, "=== %s ===\n", day.Format(dayHeaderLayout))

		s := days[key]
		sort.SliceStable(s.events, func(a, z int) bool {
			return s.events[a].StartAt.Before(s.events[z].StartAt)
		})
		sort.SliceStable(s.reminders, func(a, z int) bool {
			return reminderDue(s.reminders[a], now).Before(reminderDue(s.reminders[z], now))
		})

		for _, ev := range s.events {
			fmt.Fprintf(&b, "• [%s] %s\n", ev.CalendarName, ev.Title)
			fmt.Fprintf(&b, "  %s - %s\n",
				ev.StartAt.In(loc).Format(timeOfDayLayout),
				ev.EndAt.In(loc).Format(timeOfDayLayout))
		}

		for _, rem := range s.reminders {
			fmt.Fprintf(&b, "• [%s] %s\n", rem.CalendarName, rem.Title)

			due := reminderDue(rem, now)
			if rem.HasDueTime {
				fmt.Fprintf(&b, "  Due: %s\n", due.In(loc).Format(dueTimeLayout))
			} else {
				fmt.Fprintf(&b, "  Due: %s\n", due.In(loc).Format(dueDateLayout))
			}

			status := "pending"
			if rem.Completed {
				status = "completed"
			}
			fmt.Fprintf(&b, "  Status: %s\n", status)
		}
	}

	return b.String()
}

func reminderDue(rem model.Reminder, now time.Time) time.Time {
	if rem.DueAt != nil {
		return *rem.DueAt
	}
	return now
}
