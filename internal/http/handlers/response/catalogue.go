package response

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/timeframe"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCategory(dc category.Category) Category {
	return Category{ID: int64(dc.ID), Name: dc.Name}
}

type Timeframe struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Kind    string  `json:"type"`
	Formula *string `json:"formula"`
}

func NewTimeframe(dt timeframe.Timeframe) Timeframe {
	t := Timeframe{ID: int64(dt.ID), Name: dt.Name, Kind: dt.Kind.String()}
	if dt.Formula.IsPresent {
		formula := dt.Formula.Value
		t.Formula = &formula
	}
	return t
}

type BaseReminder struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Message      string      `json:"message"`
	Detail       string      `json:"detail"`
	LateMessage  string      `json:"late_message"`
	LateDetail   *string     `json:"late_detail"`
	CategoryID   int64       `json:"category_id"`
	Timeframes   []Timeframe `json:"timeframes"`
	TimeframeIDs []int64     `json:"timeframe_ids"`
}

func NewBaseReminder(db reminder.BaseReminder) BaseReminder {
	b := BaseReminder{
		ID:           int64(db.ID),
		Name:         db.Name,
		Message:      db.Message,
		Detail:       db.Detail,
		LateMessage:  db.LateMessage,
		CategoryID:   int64(db.CategoryID),
		Timeframes:   make([]Timeframe, 0, len(db.Timeframes)),
		TimeframeIDs: make([]int64, 0, len(db.Timeframes)),
	}
	if db.LateDetail.IsPresent {
		lateDetail := db.LateDetail.Value
		b.LateDetail = &lateDetail
	}
	for _, t := range db.Timeframes {
		b.Timeframes = append(b.Timeframes, NewTimeframe(t))
		b.TimeframeIDs = append(b.TimeframeIDs, int64(t.ID))
	}
	return b
}

type Test struct {
	ID                  int64  `json:"id"`
	Type                string `json:"type"`
	RegistrationMessage string `json:"registration_message"`
	RegistrationDetail  string `json:"registration_detail"`
	AdminMessage        string `json:"admin_message"`
	AdminDetail         string `json:"admin_detail"`
}

func NewTest(dt testdate.Test) Test {
	return Test{
		ID:                  int64(dt.ID),
		Type:                dt.Type,
		RegistrationMessage: dt.RegistrationMessage,
		RegistrationDetail:  dt.RegistrationDetail,
		AdminMessage:        dt.AdminMessage,
		AdminDetail:         dt.AdminDetail,
	}
}

type TestDate struct {
	ID               int64  `json:"id"`
	TestID           int64  `json:"test_id"`
	RegistrationDate string `json:"registration_date"`
	AdminDate        string `json:"admin_date"`
	Test             Test   `json:"test"`
}

func NewTestDate(dt testdate.TestDate) TestDate {
	return TestDate{
		ID:               int64(dt.ID),
		TestID:           int64(dt.TestID),
		RegistrationDate: c.FormatDate(dt.RegistrationDate),
		AdminDate:        c.FormatDate(dt.AdminDate),
		Test:             NewTest(dt.Test),
	}
}
