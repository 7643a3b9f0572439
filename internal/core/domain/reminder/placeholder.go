package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"strings"
)

type contextField int

const (
	fieldSchoolName contextField = iota
	fieldSchoolDueDate
	fieldDueDate
	fieldRegistrationDate
	fieldAdminDate
)

type valueFormat int

const (
	formatDirect valueFormat = iota
	formatShortDate
)

type placeholder struct {
	token  string
	field  contextField
	format valueFormat
}

var placeholders = []placeholder{
	{token: "%SCHOOL%", field: fieldSchoolName, format: formatDirect},
	{token: "%DATE%", field: fieldSchoolDueDate, format: formatShortDate},
	{token: "%APPLICATION_DATE%", field: fieldSchoolDueDate, format: formatShortDate},
	{token: "%REMINDER_DATE%", field: fieldDueDate, format: formatShortDate},
	{token: "%REGISTRATION_DATE%", field: fieldRegistrationDate, format: formatShortDate},
	{token: "%ADMIN_DATE%", field: fieldAdminDate, format: formatShortDate},
}

func (d Display) lookup(field contextField) (string, bool) {
	switch field {
	case fieldSchoolName:
		if len(d.SchoolNames) == 0 {
			return "", false
		}
		return d.SchoolName(), true
	case fieldSchoolDueDate:
		return d.SchoolDueDate.Value, d.SchoolDueDate.IsPresent
	case fieldDueDate:
		return d.DueDate, d.DueDate != ""
	case fieldRegistrationDate:
		return d.RegistrationDate.Value, d.RegistrationDate.IsPresent
	case fieldAdminDate:
		return d.AdminDate.Value, d.AdminDate.IsPresent
	default:
		return "", false
	}
}

func (p placeholder) resolve(d Display) (string, bool) {
	raw, ok := d.lookup(p.field)
	if !ok {
		return "", false
	}
	switch p.format {
	case formatDirect:
		return raw, true
	case formatShortDate:
		date, err := c.ParseDate(raw)
		if err != nil {
			return "", false
		}
		return c.FormatShortDate(date), true
	default:
		return "", false
	}
}

// Render substitutes placeholders in the four text fields.
// Placeholders whose value is not known for the reminder are left untouched.
func Render(d Display) Display {
	pairs := make([]string, 0, 2*len(placeholders))
	for _, p := range placeholders {
		if value, ok := p.resolve(d); ok {
			pairs = append(pairs, p.token, value)
		}
	}
	if len(pairs) == 0 {
		return d
	}

	replacer := strings.NewReplacer(pairs...)
	d.Message = replacer.Replace(d.Message)
	d.Detail = replacer.Replace(d.Detail)
	d.LateMessage = replacer.Replace(d.LateMessage)
	d.LateDetail = replacer.Replace(d.LateDetail)
	return d
}

// JoinNames lists names in prose: "A", "A and B", "A, B, and C".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
