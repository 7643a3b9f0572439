package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDueDate(t *testing.T) {
	assert := require.New(t)
	reminders := []Display{
		newDisplay(1, "2017-01-18", 1, "first"),
		newDisplay(2, "2017-01-02", 1, "second"),
		newDisplay(3, "2017-01-18", 1, "third"),
		newDisplay(4, "2016-12-01", 1, "fourth"),
		newDisplay(5, "2017-01-02", 1, "fifth"),
	}

	groups := GroupByDueDate(reminders)

	assert.Len(groups, 3)
	assert.Equal("2016-12-01", groups[0].DueDate)
	assert.Equal("2017-01-02", groups[1].DueDate)
	assert.Equal("2017-01-18", groups[2].DueDate)
	assert.Equal([]string{"second", "fifth"}, schoolNamesOf(groups[1].Reminders))
	assert.Equal([]string{"first", "third"}, schoolNamesOf(groups[2].Reminders))
}

func TestGroupByDueDateKeepsEveryReminder(t *testing.T) {
	dueDates := []string{"2017-03-01", "2017-01-01", "2017-02-01", "2017-01-01", "2016-05-05", "2017-03-01"}
	reminders := make([]Display, 0, len(dueDates))
	for ix, dueDate := range dueDates {
		reminders = append(reminders, newDisplay(ID(ix), dueDate, 1, "A"))
	}

	groups := GroupByDueDate(reminders)

	total := 0
	for ix, g := range groups {
		total += len(g.Reminders)
		if ix > 0 {
			assert.Less(t, groups[ix-1].DueDate, g.DueDate)
		}
		for _, r := range g.Reminders {
			assert.Equal(t, g.DueDate, r.DueDate)
		}
	}
	assert.Equal(t, len(reminders), total)
}

func TestGroupByDueDateEmpty(t *testing.T) {
	groups := GroupByDueDate(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func schoolNamesOf(reminders []Display) []string {
	names := make([]string, 0, len(reminders))
	for _, r := range reminders {
		names = append(names, r.SchoolName())
	}
	return names
}
