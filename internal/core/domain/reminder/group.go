package reminder

import "sort"

type Group struct {
	DueDate   string
	Reminders []Display
}

// GroupByDueDate buckets reminders by due date in ascending order.
// Reminders sharing a due date keep their relative order.
func GroupByDueDate(reminders []Display) []Group {
	sorted := append([]Display(nil), reminders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate < sorted[j].DueDate
	})

	groups := make([]Group, 0)
	for _, r := range sorted {
		if n := len(groups); n > 0 && groups[n-1].DueDate == r.DueDate {
			groups[n-1].Reminders = append(groups[n-1].Reminders, r)
			continue
		}
		groups = append(groups, Group{DueDate: r.DueDate, Reminders: []Display{r}})
	}
	return groups
}
