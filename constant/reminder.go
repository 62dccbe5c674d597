package constant

import "strings"

// ReminderDays lists the accepted reminder day names in week order.
var ReminderDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ReminderDaysSeparator joins day names in the stored reminder_frequency.
const ReminderDaysSeparator = ","

// FormatReminderDays returns days deduplicated, in week order, joined by
// ReminderDaysSeparator. ok is false if any name is not a known day.
func FormatReminderDays(days []string) (string, bool) {
	selected := make(map[string]bool, len(days))
	for _, day := range days {
		known := false
		for _, d := range ReminderDays {
			if d == day {
				known = true
				break
			}
		}
		if !known {
			return "", false
		}
		selected[day] = true
	}

	out := make([]string, 0, len(selected))
	for _, d := range ReminderDays {
		if selected[d] {
			out = append(out, d)
		}
	}
	return strings.Join(out, ReminderDaysSeparator), true
}
