package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"time"
)

const USER_ID = user.ID(42)

var (
	Now              = time.Date(2016, 11, 15, 9, 0, 0, 0, time.UTC)
	ApplicationDate  = time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	ThirtyDaysBefore = timeframe.Timeframe{
		ID:      1,
		Name:    "30 Days Before",
		Kind:    timeframe.KindRelative,
		Formula: c.NewOptional("30", true),
	}
	TwoWeeksBefore = timeframe.Timeframe{
		ID:      2,
		Name:    "2 Weeks Before",
		Kind:    timeframe.KindRelative,
		Formula: c.NewOptional("14", true),
	}
	RightNow = timeframe.Timeframe{ID: 3, Name: "Now", Kind: timeframe.KindNow}
	NewYear  = timeframe.Timeframe{
		ID:      4,
		Name:    "New Year",
		Kind:    timeframe.KindAbsolute,
		Formula: c.NewOptional("2017-01-01", true),
	}
)

func newSchool(id school.ID, name string, dueDate time.Time) school.School {
	return school.School{ID: id, UserID: USER_ID, Name: name, DueDate: dueDate, IsActive: true}
}

func newDisplay(baseReminderID ID, dueDate string, schoolID school.ID, schoolName string) Display {
	return Display{
		ID:             Single(NewInstanceID(schoolID, baseReminderID, 1)),
		Source:         SourceBaseReminder,
		BaseReminderID: c.NewOptional(baseReminderID, true),
		Name:           "reminder",
		DueDate:        dueDate,
		SchoolID:       Single(schoolID),
		SchoolNames:    []string{schoolName},
	}
}
