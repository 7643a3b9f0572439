package reminder

import (
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"fmt"
	"time"
)

// InstanceID identifies a computed reminder. Instances are not stored,
// so the id is derived from the school, base reminder and timeframe.
type InstanceID string

func NewInstanceID(schoolID school.ID, baseReminderID ID, timeframeID timeframe.ID) InstanceID {
	return InstanceID(fmt.Sprintf("%d:%d:%d", schoolID, baseReminderID, timeframeID))
}

type Instance struct {
	ID             InstanceID
	SchoolID       school.ID
	UserID         user.ID
	BaseReminderID ID
	TimeframeID    timeframe.ID
	DueDate        string
	Timeframe      string
}

// Expand produces one instance per (base reminder, timeframe) pair for the school.
func Expand(userID user.ID, s school.School, baseReminders []BaseReminder, now time.Time) ([]Instance, error) {
	count := 0
	for _, b := range baseReminders {
		count += len(b.Timeframes)
	}

	instances := make([]Instance, 0, count)
	for _, b := range baseReminders {
		for _, t := range b.Timeframes {
			dueDate, err := t.DueDate(s.DueDate, now)
			if err != nil {
				return nil, fmt.Errorf("base reminder %d, school %d: %w", b.ID, s.ID, err)
			}
			instances = append(instances, Instance{
				ID:             NewInstanceID(s.ID, b.ID, t.ID),
				SchoolID:       s.ID,
				UserID:         userID,
				BaseReminderID: b.ID,
				TimeframeID:    t.ID,
				DueDate:        dueDate,
				Timeframe:      t.Name,
			})
		}
	}
	return instances, nil
}
