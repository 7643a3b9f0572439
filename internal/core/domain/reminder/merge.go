package reminder

import "sort"

// Merge combines reminders of the same base reminder that fall on the same due date.
// Merged records keep the first record's texts and collect ids and schools in encounter order.
// Reminders without a base reminder are never merged.
func Merge(reminders []Display) []Display {
	sorted := append([]Display(nil), reminders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return mergeKeyLess(sorted[i], sorted[j])
	})

	merged := make([]Display, 0, len(sorted))
	for _, r := range sorted {
		if n := len(merged); n > 0 && sameMergeKey(merged[n-1], r) {
			last := &merged[n-1]
			last.ID = last.ID.Merge(r.ID)
			last.SchoolID = last.SchoolID.Merge(r.SchoolID)
			last.SchoolNames = append(last.SchoolNames, r.SchoolNames...)
			continue
		}
		r.SchoolNames = append([]string(nil), r.SchoolNames...)
		merged = append(merged, r)
	}
	return merged
}

func mergeKeyLess(a, b Display) bool {
	if a.BaseReminderID.IsPresent != b.BaseReminderID.IsPresent {
		return a.BaseReminderID.IsPresent
	}
	if a.BaseReminderID.Value != b.BaseReminderID.Value {
		return a.BaseReminderID.Value < b.BaseReminderID.Value
	}
	return a.DueDate < b.DueDate
}

func sameMergeKey(a, b Display) bool {
	return a.BaseReminderID.IsPresent &&
		b.BaseReminderID.IsPresent &&
		a.BaseReminderID.Value == b.BaseReminderID.Value &&
		a.DueDate == b.DueDate
}
