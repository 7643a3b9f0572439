package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/user"
	"time"
)

type GenerateInput struct {
	UserID        user.ID
	Schools       []school.School
	BaseReminders []BaseReminder
	TestDates     []testdate.TestDate
	Now           time.Time
}

// Generate expands base reminders over the schools, merges same-day duplicates,
// adds upcoming test date reminders, renders placeholders and groups by due date.
func Generate(input GenerateInput) ([]Group, error) {
	baseReminderByID := make(map[ID]BaseReminder, len(input.BaseReminders))
	for _, b := range input.BaseReminders {
		baseReminderByID[b.ID] = b
	}

	displays := make([]Display, 0)
	for _, s := range input.Schools {
		instances, err := Expand(input.UserID, s, input.BaseReminders, input.Now)
		if err != nil {
			return nil, err
		}
		for _, instance := range instances {
			displays = append(displays, NewDisplay(instance, baseReminderByID[instance.BaseReminderID], s))
		}
	}

	reminders := Merge(displays)
	reminders = append(reminders, FromTestDates(input.TestDates, c.FormatDate(input.Now))...)
	for ix := range reminders {
		reminders[ix] = Render(reminders[ix])
	}
	return GroupByDueDate(reminders), nil
}

// GroupFor returns the group due on date, if any.
func GroupFor(groups []Group, date string) (Group, bool) {
	for _, g := range groups {
		if g.DueDate == date {
			return g, true
		}
	}
	return Group{}, false
}
