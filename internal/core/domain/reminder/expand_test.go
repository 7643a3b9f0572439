package reminder

import (
	"collegereminders/internal/core/domain/timeframe"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	assert := require.New(t)
	baseReminders := []BaseReminder{
		{ID: 10, Name: "Write Essay", Timeframes: []timeframe.Timeframe{ThirtyDaysBefore, TwoWeeksBefore}},
		{ID: 11, Name: "Ask for recommendations", Timeframes: []timeframe.Timeframe{RightNow, NewYear}},
		{ID: 12, Name: "No timeframes"},
	}

	instances, err := Expand(USER_ID, newSchool(7, "Temple", ApplicationDate), baseReminders, Now)

	assert.Nil(err)
	assert.Equal([]Instance{
		{ID: "7:10:1", SchoolID: 7, UserID: USER_ID, BaseReminderID: 10, TimeframeID: 1, DueDate: "2017-01-02", Timeframe: "30 Days Before"},
		{ID: "7:10:2", SchoolID: 7, UserID: USER_ID, BaseReminderID: 10, TimeframeID: 2, DueDate: "2017-01-18", Timeframe: "2 Weeks Before"},
		{ID: "7:11:3", SchoolID: 7, UserID: USER_ID, BaseReminderID: 11, TimeframeID: 3, DueDate: "2016-11-15", Timeframe: "Now"},
		{ID: "7:11:4", SchoolID: 7, UserID: USER_ID, BaseReminderID: 11, TimeframeID: 4, DueDate: "2017-01-01", Timeframe: "New Year"},
	}, instances)
}

func TestExpandWithoutBaseReminders(t *testing.T) {
	instances, err := Expand(USER_ID, newSchool(7, "Temple", ApplicationDate), nil, Now)
	assert.Nil(t, err)
	assert.Empty(t, instances)
}

func TestExpandFailsOnInvalidTimeframeKind(t *testing.T) {
	baseReminders := []BaseReminder{
		{ID: 10, Timeframes: []timeframe.Timeframe{ThirtyDaysBefore, {ID: 99, Name: "broken"}}},
	}

	instances, err := Expand(USER_ID, newSchool(7, "Temple", ApplicationDate), baseReminders, Now)

	assert.ErrorIs(t, err, timeframe.ErrInvalidTimeframeKind)
	assert.Nil(t, instances)
}
