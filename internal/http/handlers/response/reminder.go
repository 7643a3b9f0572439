package response

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/school"
)

// Reminder serializes id and school_id as a scalar for a single school
// and as an array once reminders of several schools were merged.
type Reminder struct {
	ID               reminder.OneOrMany[reminder.InstanceID] `json:"id"`
	Source           string                                  `json:"source"`
	BaseReminderID   *int64                                  `json:"base_reminder_id"`
	CategoryID       *int64                                  `json:"category_id"`
	Name             string                                  `json:"name"`
	Message          string                                  `json:"message"`
	Detail           string                                  `json:"detail"`
	LateMessage      string                                  `json:"late_message"`
	LateDetail       string                                  `json:"late_detail"`
	DueDate          string                                  `json:"due_date"`
	Timeframe        string                                  `json:"timeframe,omitempty"`
	SchoolID         reminder.OneOrMany[school.ID]           `json:"school_id"`
	SchoolName       string                                  `json:"school_name"`
	SchoolDueDate    *string                                 `json:"school_due_date,omitempty"`
	RegistrationDate *string                                 `json:"registration_date,omitempty"`
	AdminDate        *string                                 `json:"admin_date,omitempty"`
}

type Group struct {
	DueDate   string     `json:"due_date"`
	Reminders []Reminder `json:"reminders"`
}

func NewReminder(d reminder.Display) Reminder {
	return Reminder{
		ID:               d.ID,
		Source:           d.Source.String(),
		BaseReminderID:   optionalID(d.BaseReminderID),
		CategoryID:       optionalCategoryID(d.CategoryID),
		Name:             d.Name,
		Message:          d.Message,
		Detail:           d.Detail,
		LateMessage:      d.LateMessage,
		LateDetail:       d.LateDetail,
		DueDate:          d.DueDate,
		Timeframe:        d.Timeframe,
		SchoolID:         d.SchoolID,
		SchoolName:       d.SchoolName(),
		SchoolDueDate:    optionalString(d.SchoolDueDate),
		RegistrationDate: optionalString(d.RegistrationDate),
		AdminDate:        optionalString(d.AdminDate),
	}
}

func Groups(groups []reminder.Group) []Group {
	result := make([]Group, 0, len(groups))
	for _, g := range groups {
		reminders := make([]Reminder, 0, len(g.Reminders))
		for _, d := range g.Reminders {
			reminders = append(reminders, NewReminder(d))
		}
		result = append(result, Group{DueDate: g.DueDate, Reminders: reminders})
	}
	return result
}

func optionalString(o c.Optional[string]) *string {
	if !o.IsPresent {
		return nil
	}
	v := o.Value
	return &v
}

func optionalID(o c.Optional[reminder.ID]) *int64 {
	if !o.IsPresent {
		return nil
	}
	v := int64(o.Value)
	return &v
}

func optionalCategoryID(o c.Optional[category.ID]) *int64 {
	if !o.IsPresent {
		return nil
	}
	v := int64(o.Value)
	return &v
}
