package generatereminders

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	service "collegereminders/internal/core/services/generate_reminders"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	groups []reminder.Group
	err    error
	input  *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return service.Result{Groups: s.groups}, nil
}

func mergedGroup() reminder.Group {
	a := reminder.Display{
		ID:             reminder.Single(reminder.InstanceID("1:10:1")),
		Source:         reminder.SourceBaseReminder,
		BaseReminderID: c.NewOptional(reminder.ID(10), true),
		Name:           "Write Essay",
		Message:        "Write the essay",
		DueDate:        "2017-01-02",
		SchoolID:       reminder.Single(school.ID(1)),
		SchoolNames:    []string{"School A"},
	}
	b := a
	b.ID = reminder.Single(reminder.InstanceID("2:10:1"))
	b.SchoolID = reminder.Single(school.ID(2))
	b.SchoolNames = []string{"School B"}
	merged := a
	merged.ID = a.ID.Merge(b.ID)
	merged.SchoolID = a.SchoolID.Merge(b.SchoolID)
	merged.SchoolNames = []string{"School A", "School B"}
	return reminder.Group{DueDate: "2017-01-02", Reminders: []reminder.Display{merged}}
}

func TestGenerateRemindersHandler(t *testing.T) {
	cases := []struct {
		url            string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{url: "/reminders", expectedStatus: http.StatusOK, expectedInput: &service.Input{}},
		{
			url:            "/reminders?school_id=5",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{SchoolID: c.NewOptional(school.ID(5), true)},
		},
		{url: "/reminders?school_id=abc", expectedStatus: http.StatusBadRequest},
		{url: "/reminders?school_id=0", expectedStatus: http.StatusBadRequest},
		{
			url:            "/reminders?school_id=5",
			err:            school.ErrSchoolDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedInput:  &service.Input{SchoolID: c.NewOptional(school.ID(5), true)},
		},
		{
			url:            "/reminders",
			err:            user.ErrUserDoesNotExist,
			expectedStatus: http.StatusUnauthorized,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/reminders",
			err:            errors.New("db is down"),
			expectedStatus: http.StatusInternalServerError,
			expectedInput:  &service.Input{},
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			s := &stubService{err: testcase.err}
			handler := New(s)
			rw := httptest.NewRecorder()

			handler.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, testcase.url, nil))

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}

func TestGenerateRemindersBody(t *testing.T) {
	s := &stubService{groups: []reminder.Group{mergedGroup()}}
	rw := httptest.NewRecorder()

	New(s).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/reminders", nil))

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.JSONEq(t, `[
		{
			"due_date": "2017-01-02",
			"reminders": [
				{
					"id": ["1:10:1", "2:10:1"],
					"source": "base_reminder",
					"base_reminder_id": 10,
					"category_id": null,
					"name": "Write Essay",
					"message": "Write the essay",
					"detail": "",
					"late_message": "",
					"late_detail": "",
					"due_date": "2017-01-02",
					"school_id": [1, 2],
					"school_name": "School A and School B"
				}
			]
		}
	]`, rw.Body.String())
}

func TestGenerateRemindersEmpty(t *testing.T) {
	rw := httptest.NewRecorder()

	New(&stubService{}).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/reminders", nil))

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.JSONEq(t, `[]`, rw.Body.String())
}
