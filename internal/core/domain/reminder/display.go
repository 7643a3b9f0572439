package reminder

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/school"
)

type Source struct {
	v string
}

func (s Source) String() string {
	return s.v
}

var (
	SourceBaseReminder     = Source{v: "base_reminder"}
	SourceTestRegistration = Source{v: "test_registration"}
	SourceTestAdmin        = Source{v: "test_admin"}
)

// Display is a reminder as shown to the user. Before merging it carries a single
// school; after merging ID, SchoolID and SchoolNames hold every merged school.
type Display struct {
	ID             OneOrMany[InstanceID]
	Source         Source
	BaseReminderID c.Optional[ID]
	CategoryID     c.Optional[category.ID]
	Name           string
	Message        string
	Detail         string
	LateMessage    string
	LateDetail     string
	DueDate        string
	Timeframe      string

	SchoolID         OneOrMany[school.ID]
	SchoolNames      []string
	SchoolDueDate    c.Optional[string]
	RegistrationDate c.Optional[string]
	AdminDate        c.Optional[string]
}

// SchoolName condenses the school names into one display string.
func (d Display) SchoolName() string {
	return JoinNames(d.SchoolNames)
}

func NewDisplay(instance Instance, b BaseReminder, s school.School) Display {
	return Display{
		ID:             Single(instance.ID),
		Source:         SourceBaseReminder,
		BaseReminderID: c.NewOptional(b.ID, true),
		CategoryID:     c.NewOptional(b.CategoryID, true),
		Name:           b.Name,
		Message:        b.Message,
		Detail:         b.Detail,
		LateMessage:    b.LateMessage,
		LateDetail:     b.LateDetail.ValueOr(""),
		DueDate:        instance.DueDate,
		Timeframe:      instance.Timeframe,
		SchoolID:       Single(s.ID),
		SchoolNames:    []string{s.Name},
		SchoolDueDate:  c.NewOptional(c.FormatDate(s.DueDate), true),
	}
}
