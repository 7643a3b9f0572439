package reminder

import (
	"collegereminders/internal/core/domain/testdate"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var SAT = testdate.Test{
	ID:                  1,
	Type:                "SAT",
	RegistrationMessage: "Register for the SAT",
	AdminMessage:        "Bring two pencils",
}

func newTestDate(id testdate.ID, registration, admin time.Time) testdate.TestDate {
	return testdate.TestDate{ID: id, TestID: SAT.ID, RegistrationDate: registration, AdminDate: admin, Test: SAT}
}

func TestFromTestDates(t *testing.T) {
	assert := require.New(t)
	records := []testdate.TestDate{
		newTestDate(2, time.Date(2017, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2017, 2, 4, 0, 0, 0, 0, time.UTC)),
		newTestDate(1, time.Date(2016, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2016, 12, 20, 0, 0, 0, 0, time.UTC)),
	}

	reminders := FromTestDates(records, "2016-11-15")

	assert.Len(reminders, 4)
	assert.Equal("2016-12-01", reminders[0].DueDate)
	assert.Equal("SAT registration due today", reminders[0].Name)
	assert.Equal("Register for the SAT", reminders[0].Message)
	assert.Equal(SourceTestRegistration, reminders[0].Source)
	assert.Equal([]InstanceID{"test:1:registration"}, reminders[0].ID.Values())
	assert.Equal("2016-12-20", reminders[1].DueDate)
	assert.Equal("SAT test today", reminders[1].Name)
	assert.Equal(SourceTestAdmin, reminders[1].Source)
	assert.Equal("2016-12-01", reminders[1].RegistrationDate.Value)
	assert.Equal("2016-12-20", reminders[1].AdminDate.Value)
	assert.Equal("2017-01-10", reminders[2].DueDate)
	assert.Equal("2017-02-04", reminders[3].DueDate)
	for _, r := range reminders {
		assert.False(r.BaseReminderID.IsPresent)
		assert.True(r.SchoolID.IsEmpty())
	}
}

func TestFromTestDatesDropsPastDates(t *testing.T) {
	records := []testdate.TestDate{
		newTestDate(1, time.Date(2016, 11, 1, 0, 0, 0, 0, time.UTC), time.Date(2016, 11, 15, 0, 0, 0, 0, time.UTC)),
		newTestDate(2, time.Date(2016, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2016, 10, 20, 0, 0, 0, 0, time.UTC)),
	}

	reminders := FromTestDates(records, "2016-11-15")

	require.Len(t, reminders, 1)
	assert.Equal(t, "SAT test today", reminders[0].Name)
	assert.Equal(t, "2016-11-15", reminders[0].DueDate)
}

func TestFromTestDatesEmpty(t *testing.T) {
	assert.Empty(t, FromTestDates(nil, "2016-11-15"))
}
