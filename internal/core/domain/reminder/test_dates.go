package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/testdate"
	"fmt"
	"sort"
)

// FromTestDates turns every test date into a registration reminder and a test day reminder.
// Reminders dated before today (YYYY-MM-DD) are dropped.
func FromTestDates(records []testdate.TestDate, today string) []Display {
	reminders := make([]Display, 0, 2*len(records))
	for _, record := range records {
		registrationDate := c.FormatDate(record.RegistrationDate)
		adminDate := c.FormatDate(record.AdminDate)

		if registrationDate >= today {
			reminders = append(reminders, Display{
				ID:               Single(InstanceID(fmt.Sprintf("test:%d:registration", record.ID))),
				Source:           SourceTestRegistration,
				Name:             fmt.Sprintf("%s registration due today", record.Test.Type),
				Message:          record.Test.RegistrationMessage,
				Detail:           record.Test.RegistrationDetail,
				DueDate:          registrationDate,
				RegistrationDate: c.NewOptional(registrationDate, true),
				AdminDate:        c.NewOptional(adminDate, true),
			})
		}
		if adminDate >= today {
			reminders = append(reminders, Display{
				ID:               Single(InstanceID(fmt.Sprintf("test:%d:admin", record.ID))),
				Source:           SourceTestAdmin,
				Name:             fmt.Sprintf("%s test today", record.Test.Type),
				Message:          record.Test.AdminMessage,
				Detail:           record.Test.AdminDetail,
				DueDate:          adminDate,
				RegistrationDate: c.NewOptional(registrationDate, true),
				AdminDate:        c.NewOptional(adminDate, true),
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueDate < reminders[j].DueDate
	})
	return reminders
}
